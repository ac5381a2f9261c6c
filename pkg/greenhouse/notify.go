package greenhouse

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/metrics"
	"greentech.xyz/greenhouse-monitor-service/pkg/models"
)

// RecipientsFor derives the notification recipients for a greenhouse:
// assigned employees that are available and have an email address.
func RecipientsFor(employees []models.Employee) []string {
	eligible := common.Filter(employees, func(e models.Employee) bool {
		return e.Email != "" && e.Available
	})
	return common.Mapper(eligible, func(e models.Employee) string {
		return e.Email
	})
}

// dispatchAlert sends an alert for an already-committed issue. It is only
// ever called after the transaction has committed; whatever happens here
// is reported as a warning and never unwinds stored state.
func (g *Core) dispatchAlert(gh *models.Greenhouse, recipients []string, description string) []string {
	logger := common.GetLoggerWith(
		common.LoggerNameGreenhouseCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryNotify),
	)

	if len(recipients) == 0 {
		logger.Warn("Issue detected but no active employees with emails are assigned",
			zap.String("greenhouse", gh.Name))
		metrics.NotificationFailures.WithLabelValues("no_recipients").Inc()
		return []string{fmt.Sprintf(
			"Issue detected in Greenhouse '%s', but no active employees with emails are assigned.", gh.Name)}
	}

	subject := fmt.Sprintf("Alert: GreenHouse Notification For '%s'", gh.Name)
	body := description + "\n\nPlease investigate and resolve the issue."

	if g.Notifier == nil || !g.Notifier.Send(subject, recipients, body) {
		logger.Warn("Alert logged, but notification delivery failed",
			zap.String("greenhouse", gh.Name),
			zap.Strings("recipients", recipients))
		metrics.NotificationFailures.WithLabelValues("send_failed").Inc()
		return []string{fmt.Sprintf(
			"Alert logged, but failed to send email notification to %s.", strings.Join(recipients, ", "))}
	}

	logger.Info("Alert notification sent",
		zap.String("greenhouse", gh.Name),
		zap.Strings("recipients", recipients))
	metrics.NotificationsSent.Inc()
	return nil
}
