package greenhouse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/greenhouse"
	_ "greentech.xyz/greenhouse-monitor-service/pkg/testing"
)

func TestDashboardSummary(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _ := GetMockCoreWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()
	resetTables(t, core)

	ghA := seedGreenhouse(t, core, "House A", "Sector 1")
	ghB := seedGreenhouse(t, core, "House B", "Sector 2")
	ghC := seedGreenhouse(t, core, "House C", "Sector 3")
	ghD := seedGreenhouse(t, core, "House D", "Sector 4")
	seedGreenhouse(t, core, "House E", "Sector 5")

	seedEmployee(t, core, "Hana", "hana@greentech.xyz", &ghB.ID, true)
	seedEmployee(t, core, "Ivan", "ivan@greentech.xyz", nil, true)

	now := time.Now().UTC()
	issueB := seedOngoingIssue(t, core, ghB.ID, now.Add(-time.Hour))
	seedOngoingIssue(t, core, ghC.ID, now)

	// One resolved issue on A; A still counts as healthy
	resolved := seedOngoingIssue(t, core, ghA.ID, now.Add(-2*time.Hour))
	_, err := core.Issue.ResolveIssue(resolved.ID, greenhouse.Actor{EmployeeID: 1, IsAdmin: true})
	assert.NoError(t, err)

	actor := greenhouse.Actor{EmployeeID: 1, GreenhouseID: &ghB.ID}
	summary, err := core.Dashboard.Summary(actor)
	assert.NoError(t, err)

	// Troubled greenhouses float to the front, ties break by id, and
	// only the first four cards are surfaced
	assert.Len(t, summary.Greenhouses, 4)
	assert.Equal(t, ghB.ID, summary.Greenhouses[0].Greenhouse.ID)
	assert.Equal(t, ghC.ID, summary.Greenhouses[1].Greenhouse.ID)
	assert.Equal(t, ghA.ID, summary.Greenhouses[2].Greenhouse.ID)
	assert.Equal(t, ghD.ID, summary.Greenhouses[3].Greenhouse.ID)

	assert.Equal(t, "Issue Detected", summary.Greenhouses[0].StatusText)
	assert.True(t, summary.Greenhouses[0].HasOngoingIssue)
	assert.Equal(t, "Normal", summary.Greenhouses[2].StatusText)
	assert.False(t, summary.Greenhouses[2].HasOngoingIssue)

	assert.Equal(t, int64(2), summary.EmployeeCount)
	assert.Equal(t, 2, summary.OngoingGreenhouseCount)
	assert.Equal(t, int64(1), summary.ResolvedIssueCount)

	// The actor is assigned to B, so B's newest ongoing issue rides along
	if assert.NotNil(t, summary.AssignedIssue) {
		assert.Equal(t, issueB.ID, summary.AssignedIssue.ID)
	}
}

func TestDashboardSummary_LatestReadingOnCard(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _ := GetMockCoreWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()
	resetTables(t, core)

	gh := seedGreenhouse(t, core, "Fresh House", "Sector 1")

	older := normalReading()
	older.Temperature = 21.0
	older.Timestamp = time.Now().UTC().Add(-time.Hour)
	_, err := core.Reading.RecordReading(gh.ID, older)
	assert.NoError(t, err)

	newer := normalReading()
	newer.Temperature = 24.0
	newer.Timestamp = time.Now().UTC()
	_, err = core.Reading.RecordReading(gh.ID, newer)
	assert.NoError(t, err)

	summary, err := core.Dashboard.Summary(greenhouse.Actor{EmployeeID: 1, IsAdmin: true})
	assert.NoError(t, err)
	assert.Len(t, summary.Greenhouses, 1)

	card := summary.Greenhouses[0]
	if assert.NotNil(t, card.LatestReading) {
		assert.Equal(t, 24.0, card.LatestReading.Temperature)
	}
}

func TestDashboardSummary_Empty(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _ := GetMockCoreWithMemorySqliteDialector(t, false)
	defer ctrl.Finish()
	resetTables(t, core)

	summary, err := core.Dashboard.Summary(greenhouse.Actor{EmployeeID: 1, IsAdmin: true})
	assert.NoError(t, err)
	assert.Len(t, summary.Greenhouses, 0)
	assert.Equal(t, int64(0), summary.EmployeeCount)
	assert.Equal(t, 0, summary.OngoingGreenhouseCount)
	assert.Equal(t, int64(0), summary.ResolvedIssueCount)
	assert.Nil(t, summary.AssignedIssue)
}
