package greenhouse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/metrics"
	"greentech.xyz/greenhouse-monitor-service/pkg/models"
)

// RecordResult reports what a reading submission did: whether an issue
// was opened, its id, the violation strings that produced it, and any
// post-commit warnings (notification problems, missing recipients).
type RecordResult struct {
	IssueOpened bool     `json:"issue_opened"`
	IssueID     uint     `json:"issue_id,omitempty"`
	Violations  []string `json:"violations,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

func (g *Core) recordReading(greenhouseID uint, input *Reading) (*RecordResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGreenhouseCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryReading),
	)

	var gh models.Greenhouse
	if err := g.Db.Conn.First(&gh, greenhouseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("greenhouse %d: %w", greenhouseID, ErrNotFound)
		}
		return nil, err
	}

	now := time.Now().UTC()

	// The caller-supplied timestamp only ever labels the data row; issue
	// bookkeeping always runs on server time so resolved_at can never
	// precede created_at.
	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = now
	}

	violations := EvaluateReading(input)

	data := models.EnvironmentalData{
		GreenhouseID:   gh.ID,
		Temperature:    input.Temperature,
		Humidity:       input.Humidity,
		CO2:            input.CO2,
		LightIntensity: input.LightIntensity,
		SoilPH:         input.SoilPH,
		SoilMoisture:   input.SoilMoisture,
		Timestamp:      timestamp,
		Source:         models.DataSourceManual,
	}

	var issue models.Issue

	logger.Info("Received reading for greenhouse", zap.Reflect("reading", data))

	// The reading is persisted regardless of violation outcome; the issue
	// rides in the same transaction so either both rows land or neither.
	err := g.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&data).Error; err != nil {
			return err
		}

		if len(violations) == 0 {
			return nil
		}

		issue = models.Issue{
			GreenhouseID: gh.ID,
			Description: fmt.Sprintf("Alert for Greenhouse '%s' (%s):\n- %s",
				gh.Name, gh.Location, strings.Join(violations, "\n- ")),
			Status:    models.IssueStatusOngoing,
			CreatedAt: now,
		}
		if err := tx.Create(&issue).Error; err != nil {
			return err
		}

		return tx.Model(&gh).Update("status", models.GreenhouseStatusIssueDetected).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.ReadingsRecorded.Inc()

	result := &RecordResult{Violations: violations}

	if len(violations) > 0 {
		result.IssueOpened = true
		result.IssueID = issue.ID
		metrics.IssuesOpened.Inc()

		logger.Info("Issue opened for greenhouse", zap.Reflect("issue", issue))

		var staff []models.Employee
		if err := g.Db.Conn.Where("greenhouse_id = ?", gh.ID).Find(&staff).Error; err != nil {
			// the issue is already committed; a failed staff lookup only
			// degrades to an undelivered notification
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Alert logged, but recipient lookup failed: %v.", err))
			return result, nil
		}

		result.Warnings = append(result.Warnings,
			g.dispatchAlert(&gh, RecipientsFor(staff), issue.Description)...)
	}

	return result, nil
}

type IReadingImpl struct {
	core *Core
}

func (ir *IReadingImpl) RecordReading(greenhouseID uint, input *Reading) (*RecordResult, error) {
	return ir.core.recordReading(greenhouseID, input)
}

func (g *Core) GetIReading() IReading {
	return &IReadingImpl{core: g}
}
