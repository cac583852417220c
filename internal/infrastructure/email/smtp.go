package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// ReminderSender is what the renewal reminder job needs from the mail layer.
type ReminderSender interface {
	SendRenewalReminder(to, activityName, serviceName string, deadline time.Time, daysLeft int) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendRenewalReminder(to, activityName, serviceName string, deadline time.Time, daysLeft int) error {
	subject := fmt.Sprintf("Subscription for %s expires in %d days", serviceName, daysLeft)
	deadlineText := deadline.Format("2 January 2006")

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Renewal reminder</h2>
			<p>The <strong>%s</strong> subscription for <strong>%s</strong> expires on %s.</p>
			<p>Renew before the deadline to keep access to the service without interruption.</p>
			<p>If you have already arranged the renewal, please ignore this message.</p>
		</body>
		</html>
	`, serviceName, activityName, deadlineText)

	plainBody := fmt.Sprintf(`
Renewal reminder

The %s subscription for %s expires on %s.

Renew before the deadline to keep access to the service without interruption.

If you have already arranged the renewal, please ignore this message.
	`, serviceName, activityName, deadlineText)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
