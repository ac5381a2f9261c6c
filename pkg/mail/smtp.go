// Package mail is the SMTP implementation of the core's Notifier
// interface. Delivery failures are logged and reported as a false
// result; they never propagate as errors past this boundary.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
	"greentech.xyz/greenhouse-monitor-service/pkg/common"
	"greentech.xyz/greenhouse-monitor-service/pkg/greenhouse"
)

type SMTPNotifier struct {
	Cfg *greenhouse.AppConfig
}

func NewSMTPNotifier(cfg *greenhouse.AppConfig) *SMTPNotifier {
	return &SMTPNotifier{Cfg: cfg}
}

func (n *SMTPNotifier) Send(subject string, recipients []string, body string) bool {
	logger := common.GetLoggerWith(common.LoggerNameMail)

	if !n.Cfg.MailEnabled {
		logger.Info("Email notifications are disabled in config")
		return false
	}

	if n.Cfg.MailUsername == "" || n.Cfg.MailPassword == "" || n.Cfg.MailServer == "" {
		logger.Error("Mail server configuration incomplete, cannot send email")
		return false
	}

	if len(recipients) == 0 {
		logger.Info("No recipients provided for email notification")
		return false
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", n.Cfg.MailSender, n.Cfg.MailUsername),
		fmt.Sprintf("To: %s", strings.Join(recipients, ", ")),
		fmt.Sprintf("Subject: %s", subject),
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.Cfg.MailServer, n.Cfg.MailPort)
	auth := smtp.PlainAuth("", n.Cfg.MailUsername, n.Cfg.MailPassword, n.Cfg.MailServer)

	if err := smtp.SendMail(addr, auth, n.Cfg.MailUsername, recipients, []byte(msg)); err != nil {
		logger.Error("Failed to send email",
			zap.Strings("recipients", recipients),
			zap.Error(err))
		return false
	}

	logger.Info("Email sent successfully", zap.Strings("recipients", recipients))
	return true
}
