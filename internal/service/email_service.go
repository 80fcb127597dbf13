package service

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/config"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/logger"
)

// Mailer sends transactional email. Sends are fire-and-forget: failures
// are logged, never surfaced to the request that triggered them.
type Mailer interface {
	SendWelcome(to, name string)
	SendGuardianInvite(to, name, invitedBy string)
	SendPaymentReceipt(to string, amount int64, orderID string)
}

// SendgridMailer sends through the SendGrid v3 mail API.
type SendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

// NoopMailer is used when email is disabled in config (local development,
// tests).
type NoopMailer struct{}

func NewMailer(cfg *config.EmailConfig) Mailer {
	if !cfg.Enabled || cfg.SendgridKey == "" {
		return &NoopMailer{}
	}
	return &SendgridMailer{
		client: sendgrid.NewSendClient(cfg.SendgridKey),
		from:   sgmail.NewEmail(cfg.AppName, cfg.FromAddress),
	}
}

func (m *SendgridMailer) send(to, subject, plain, html string) {
	go func() {
		message := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail("", to), plain, html)
		resp, err := m.client.Send(message)
		if err != nil {
			logger.Log.Error("sendgrid send failed", zap.String("to", to), zap.Error(err))
			return
		}
		if resp.StatusCode >= 400 {
			logger.Log.Error("sendgrid rejected message",
				zap.String("to", to),
				zap.Int("status", resp.StatusCode),
				zap.String("body", resp.Body))
		}
	}()
}

func (m *SendgridMailer) SendWelcome(to, name string) {
	subject := "Welcome to Homeschool Transcript Tracker"
	plain := fmt.Sprintf("Hi %s,\n\nYour account is ready. Add your first student to start building transcripts.", name)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Add your first student to start building transcripts.</p>", name)
	m.send(to, subject, plain, html)
}

func (m *SendgridMailer) SendGuardianInvite(to, name, invitedBy string) {
	subject := "You've been invited to Homeschool Transcript Tracker"
	plain := fmt.Sprintf("Hi %s,\n\n%s invited you to help manage their family's academic records. Log in with the temporary password they shared with you.", name, invitedBy)
	html := fmt.Sprintf("<p>Hi %s,</p><p>%s invited you to help manage their family's academic records. Log in with the temporary password they shared with you.</p>", name, invitedBy)
	m.send(to, subject, plain, html)
}

func (m *SendgridMailer) SendPaymentReceipt(to string, amount int64, orderID string) {
	subject := "Payment received"
	plain := fmt.Sprintf("We received your payment of %d for order %s. Thank you!", amount, orderID)
	html := fmt.Sprintf("<p>We received your payment of <strong>%d</strong> for order %s. Thank you!</p>", amount, orderID)
	m.send(to, subject, plain, html)
}

func (m *NoopMailer) SendWelcome(to, name string) {}

func (m *NoopMailer) SendGuardianInvite(to, name, invitedBy string) {}

func (m *NoopMailer) SendPaymentReceipt(to string, amount int64, orderID string) {}
