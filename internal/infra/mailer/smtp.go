// Package mailer delivers rendered notifications.
package mailer

import (
	"context"
	"log/slog"

	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/notify"

	"github.com/wneessen/go-mail"
)

type SMTPMailer struct {
	client   *mail.Client
	from     string
	fromName string
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.TLS {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create smtp client")
	}
	return &SMTPMailer{client: client, from: cfg.From, fromName: cfg.FromName}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg notify.Message) error {
	out := mail.NewMsg()
	if err := out.FromFormat(m.fromName, m.from); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := out.To(msg.To); err != nil {
		return errs.Wrapf(err, "invalid recipient %q", msg.To)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return errs.Wrap(err, "smtp delivery failed")
	}
	return nil
}

// LogMailer stands in when SMTP is not configured. Jobs are marked sent after logging.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg notify.Message) error {
	slog.InfoContext(ctx, "mail delivery disabled, message dropped",
		"to", msg.To,
		"subject", msg.Subject,
		"bytes", len(msg.HTMLBody))
	return nil
}

// New picks the SMTP mailer when a host is configured.
func New(cfg config.MailConfig) (notify.Mailer, error) {
	if !cfg.Enabled() {
		return LogMailer{}, nil
	}
	return NewSMTPMailer(cfg)
}
