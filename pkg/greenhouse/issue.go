package greenhouse

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/metrics"
	"greentech.xyz/greenhouse-monitor-service/pkg/models"
)

// ResolveResult distinguishes a fresh resolution from the no-op case of
// an issue that somebody already resolved.
type ResolveResult struct {
	Resolved        bool `json:"resolved"`
	AlreadyResolved bool `json:"already_resolved"`
}

// resolveIssue moves an issue Ongoing -> Resolved. The transition is
// one-way: resolving an already-resolved issue is a reported no-op, not
// an error. Only admins and the employee assigned to the issue's
// greenhouse may resolve. On success the status flip and the baseline
// reading land in one transaction.
func (g *Core) resolveIssue(issueID uint, actor Actor) (*ResolveResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameGreenhouseCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIssue),
	)

	var issue models.Issue
	if err := g.Db.Conn.First(&issue, issueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("issue %d: %w", issueID, ErrNotFound)
		}
		return nil, err
	}

	canResolve := actor.IsAdmin ||
		(actor.GreenhouseID != nil && *actor.GreenhouseID == issue.GreenhouseID)
	if !canResolve {
		return nil, fmt.Errorf("resolve issue %d: %w", issueID, ErrPermissionDenied)
	}

	if issue.Status == models.IssueStatusResolved {
		logger.Info("Issue was already resolved", zap.Uint("issue_id", issue.ID))
		return &ResolveResult{Resolved: false, AlreadyResolved: true}, nil
	}

	now := time.Now().UTC()
	baseline := g.Cfg.ResolutionBaseline(issue.GreenhouseID, now)

	err := g.Db.Conn.Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&issue).Updates(map[string]any{
			"status":      models.IssueStatusResolved,
			"resolved_at": now,
		})
		if update.Error != nil {
			return update.Error
		}
		if err := tx.Create(&baseline).Error; err != nil {
			return err
		}

		// The greenhouse goes back to normal only once nothing is ongoing
		var ongoing int64
		if err := tx.Model(&models.Issue{}).
			Where("greenhouse_id = ? AND status = ?", issue.GreenhouseID, models.IssueStatusOngoing).
			Count(&ongoing).Error; err != nil {
			return err
		}
		if ongoing == 0 {
			return tx.Model(&models.Greenhouse{}).
				Where("id = ?", issue.GreenhouseID).
				Update("status", models.GreenhouseStatusNormal).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IssuesResolved.Inc()

	logger.Info("Issue resolved, normal environmental state logged",
		zap.Uint("issue_id", issue.ID),
		zap.Uint("greenhouse_id", issue.GreenhouseID),
		zap.Uint("employee_id", actor.EmployeeID))

	return &ResolveResult{Resolved: true}, nil
}

// listIssues returns every issue visible to the actor: admins see all,
// everyone else only their assigned greenhouse. Unassigned non-admins
// see nothing.
func (g *Core) listIssues(actor Actor) ([]models.Issue, error) {
	query := g.Db.Conn.Order("status asc").Order("created_at desc")

	if !actor.IsAdmin {
		if actor.GreenhouseID == nil {
			return []models.Issue{}, nil
		}
		query = query.Where("greenhouse_id = ?", *actor.GreenhouseID)
	}

	var issues []models.Issue
	err := query.Find(&issues).Error
	return issues, err
}

func (g *Core) getGreenhouseIssues(greenhouseID uint) ([]models.Issue, error) {
	var issues []models.Issue
	err := g.Db.Conn.
		Where("greenhouse_id = ?", greenhouseID).
		Order("created_at desc").
		Find(&issues).Error
	return issues, err
}

// latestOngoingIssue returns nil without error when nothing is ongoing.
func (g *Core) latestOngoingIssue(greenhouseID uint) (*models.Issue, error) {
	var issue models.Issue
	err := g.Db.Conn.
		Where("greenhouse_id = ? AND status = ?", greenhouseID, models.IssueStatusOngoing).
		Order("created_at desc").
		First(&issue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

type IIssueImpl struct {
	core *Core
}

func (ii *IIssueImpl) ResolveIssue(issueID uint, actor Actor) (*ResolveResult, error) {
	return ii.core.resolveIssue(issueID, actor)
}

func (ii *IIssueImpl) ListIssues(actor Actor) ([]models.Issue, error) {
	return ii.core.listIssues(actor)
}

func (ii *IIssueImpl) GetGreenhouseIssues(greenhouseID uint) ([]models.Issue, error) {
	return ii.core.getGreenhouseIssues(greenhouseID)
}

func (g *Core) GetIIssue() IIssue {
	return &IIssueImpl{core: g}
}
