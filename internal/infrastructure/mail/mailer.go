package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/JSharma2K/cofounded/internal/config"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers one-time login codes. The auth usecase treats delivery as
// a black box.
type Mailer interface {
	SendCode(ctx context.Context, email, code string) error
}

// New picks the provider from config: "sendgrid" for real delivery, "log"
// for development.
func New(cfg *config.MailConfig) Mailer {
	if cfg.Provider == "sendgrid" {
		return &sendGridMailer{
			client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
			from:   sgmail.NewEmail(cfg.FromName, cfg.FromAddress),
		}
	}
	return &logMailer{}
}

type sendGridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func (m *sendGridMailer) SendCode(ctx context.Context, email, code string) error {
	to := sgmail.NewEmail("", email)
	subject := "Your sign-in code"
	body := fmt.Sprintf("Your one-time sign-in code is %s. It expires shortly.", code)
	message := sgmail.NewSingleEmail(m.from, subject, to, body, body)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send code email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected code email: status %d", resp.StatusCode)
	}
	return nil
}

type logMailer struct{}

func (m *logMailer) SendCode(_ context.Context, email, code string) error {
	log.Printf("mail: one-time code for %s: %s", email, code)
	return nil
}
