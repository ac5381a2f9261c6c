package greenhouse

import (
	"sort"

	"go.uber.org/zap"
	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/models"
)

const dashboardGreenhouseLimit = 4

// GreenhouseSummary is one dashboard card: the greenhouse, its computed
// status and the most recent reading of any source.
type GreenhouseSummary struct {
	Greenhouse      models.Greenhouse         `json:"greenhouse"`
	StatusText      string                    `json:"status_text"`
	HasOngoingIssue bool                      `json:"has_ongoing_issue"`
	LatestReading   *models.EnvironmentalData `json:"latest_reading,omitempty"`
}

type DashboardSummary struct {
	Greenhouses            []GreenhouseSummary `json:"greenhouses"`
	EmployeeCount          int64               `json:"employee_count"`
	OngoingGreenhouseCount int                 `json:"ongoing_greenhouse_count"`
	ResolvedIssueCount     int64               `json:"resolved_issue_count"`
	AssignedIssue          *models.Issue       `json:"assigned_issue,omitempty"`
}

// summary is a pure read-side projection: greenhouses with an ongoing
// issue sort first, ties break by id ascending, and only the first four
// are surfaced. If the actor is assigned to a greenhouse their newest
// ongoing issue rides along for the alert banner.
func (g *Core) summary(actor Actor) (*DashboardSummary, error) {
	var greenhouses []models.Greenhouse
	if err := g.Db.Conn.Preload("Issues").Order("id").Find(&greenhouses).Error; err != nil {
		return nil, err
	}

	cards := make([]GreenhouseSummary, 0, len(greenhouses))
	ongoingCount := 0
	for _, gh := range greenhouses {
		hasOngoing := false
		for _, issue := range gh.Issues {
			if issue.Status == models.IssueStatusOngoing {
				hasOngoing = true
				break
			}
		}
		if hasOngoing {
			ongoingCount++
		}

		statusText := "Normal"
		if hasOngoing {
			statusText = "Issue Detected"
		}

		latest, err := g.latestReading(gh.ID)
		if err != nil {
			return nil, err
		}

		cards = append(cards, GreenhouseSummary{
			Greenhouse:      gh,
			StatusText:      statusText,
			HasOngoingIssue: hasOngoing,
			LatestReading:   latest,
		})
	}

	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].HasOngoingIssue != cards[j].HasOngoingIssue {
			return cards[i].HasOngoingIssue
		}
		return cards[i].Greenhouse.ID < cards[j].Greenhouse.ID
	})
	if len(cards) > dashboardGreenhouseLimit {
		cards = cards[:dashboardGreenhouseLimit]
	}

	var employeeCount int64
	if err := g.Db.Conn.Model(&models.Employee{}).Count(&employeeCount).Error; err != nil {
		return nil, err
	}

	var resolvedCount int64
	if err := g.Db.Conn.Model(&models.Issue{}).
		Where("status = ?", models.IssueStatusResolved).
		Count(&resolvedCount).Error; err != nil {
		return nil, err
	}

	result := &DashboardSummary{
		Greenhouses:            cards,
		EmployeeCount:          employeeCount,
		OngoingGreenhouseCount: ongoingCount,
		ResolvedIssueCount:     resolvedCount,
	}

	common.GetLoggerWith(
		common.LoggerNameGreenhouseCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDashboard),
	).Info("Dashboard summary computed",
		zap.Int("greenhouses", len(cards)),
		zap.Int("ongoing_greenhouses", ongoingCount),
		zap.Int64("resolved_issues", resolvedCount))

	if actor.GreenhouseID != nil {
		assigned, err := g.latestOngoingIssue(*actor.GreenhouseID)
		if err != nil {
			return nil, err
		}
		result.AssignedIssue = assigned
	}

	return result, nil
}

type IDashboardImpl struct {
	core *Core
}

func (id *IDashboardImpl) Summary(actor Actor) (*DashboardSummary, error) {
	return id.core.summary(actor)
}

func (g *Core) GetIDashboard() IDashboard {
	return &IDashboardImpl{core: g}
}
