package mailer

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/pkg/errors"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

type Message struct {
	To      string
	Subject string
	Body    string
	Html    bool
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type smtpMailer struct {
	cfg *config.MailConfig
}

func New(cfg *config.MailConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	return mail.NewClient(m.cfg.Host, opts...)
}

// Build assembles the go-mail message without sending it.
func (m *smtpMailer) Build(in Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return nil, errors.InternalServerError(fmt.Sprintf("error set from address: %v", err))
	}
	if err := msg.To(in.To); err != nil {
		return nil, errors.BadRequest(fmt.Sprintf("error set to address: %v", err))
	}
	msg.Subject(in.Subject)
	if in.Html {
		msg.SetBodyString(mail.TypeTextHTML, in.Body)
	} else {
		msg.SetBodyString(mail.TypeTextPlain, in.Body)
	}
	return msg, nil
}

func (m *smtpMailer) Send(ctx context.Context, in Message) error {
	msg, err := m.Build(in)
	if err != nil {
		return err
	}

	c, err := m.client()
	if err != nil {
		return errors.ExternalError(fmt.Sprintf("error init smtp client: %v", err))
	}

	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.ExternalError(fmt.Sprintf("error send mail: %v", err))
	}
	return nil
}
