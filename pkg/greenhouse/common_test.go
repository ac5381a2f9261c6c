package greenhouse_test

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"greentech.xyz/greenhouse-monitor-service/pkg/db"
	"greentech.xyz/greenhouse-monitor-service/pkg/greenhouse"
	"greentech.xyz/greenhouse-monitor-service/pkg/greenhouse/mocks"
	"greentech.xyz/greenhouse-monitor-service/pkg/models"
)

func GetMockCoreWithMemorySqliteDialector(t *testing.T, useMockNotifier bool) (
	*gomock.Controller,
	*greenhouse.Core,
	*mocks.MockNotifier,
) {
	ctrl := gomock.NewController(t)

	mockNotifier := mocks.NewMockNotifier(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	core := &greenhouse.Core{Db: *dbInstance, Cfg: greenhouse.DefaultAppConfig()}

	opts := greenhouse.ServiceOpts{
		Reading:    core.GetIReading(),
		Issue:      core.GetIIssue(),
		Dashboard:  core.GetIDashboard(),
		Employee:   core.GetIEmployee(),
		Greenhouse: core.GetIGreenhouse(),
	}
	if useMockNotifier {
		opts.Notifier = mockNotifier
	}
	core.WithServices(opts)

	return ctrl, core, mockNotifier
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

// resetTables clears all rows from the shared in-memory database so
// tests asserting on counts or orderings start from a known state.
func resetTables(t *testing.T, core *greenhouse.Core) {
	t.Helper()
	for _, model := range []any{
		&models.Issue{},
		&models.EnvironmentalData{},
		&models.Employee{},
		&models.Greenhouse{},
	} {
		if err := core.Db.Conn.Where("1 = 1").Delete(model).Error; err != nil {
			t.Fatalf("failed to reset table for %T: %v", model, err)
		}
	}
}

func seedGreenhouse(t *testing.T, core *greenhouse.Core, name, location string) *models.Greenhouse {
	t.Helper()
	gh, err := core.Greenhouse.CreateGreenhouse(name, location)
	if err != nil {
		t.Fatalf("failed to seed greenhouse %q: %v", name, err)
	}
	return gh
}

// seedEmployee inserts an employee row directly, bypassing the create
// flow. PasswordHash is a placeholder; tests that authenticate must go
// through CreateEmployee instead.
func seedEmployee(t *testing.T, core *greenhouse.Core, name, email string, greenhouseID *uint, available bool) *models.Employee {
	t.Helper()
	employee := models.Employee{
		Name:         name,
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Available:    available,
		GreenhouseID: greenhouseID,
		CompanyID:    fmt.Sprintf("GT%s", uuid.NewString()[:6]),
	}
	if err := core.Db.Conn.Create(&employee).Error; err != nil {
		t.Fatalf("failed to seed employee %q: %v", email, err)
	}
	return &employee
}

func seedOngoingIssue(t *testing.T, core *greenhouse.Core, greenhouseID uint, createdAt time.Time) *models.Issue {
	t.Helper()
	issue := models.Issue{
		GreenhouseID: greenhouseID,
		Description:  "seeded issue",
		Status:       models.IssueStatusOngoing,
		CreatedAt:    createdAt,
	}
	if err := core.Db.Conn.Create(&issue).Error; err != nil {
		t.Fatalf("failed to seed issue: %v", err)
	}
	return &issue
}

// normalReading is a snapshot with every metric inside its range.
func normalReading() *greenhouse.Reading {
	return &greenhouse.Reading{
		Temperature:    22.0,
		Humidity:       50.0,
		CO2:            700.0,
		LightIntensity: 5000.0,
		SoilPH:         6.5,
		SoilMoisture:   45.0,
	}
}
