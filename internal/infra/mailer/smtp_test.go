//go:build unit

package mailer_test

import (
	"context"
	"testing"

	"branch-reservations/internal/infra/mailer"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/usecase/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smtpConfig() config.MailConfig {
	return config.MailConfig{
		Host:     "smtp.reservas.test",
		Port:     587,
		From:     "reservas@reservas.test",
		FromName: "Reservas",
		TLS:      true,
	}
}

func TestNew(t *testing.T) {
	t.Run("no host logs instead of sending", func(t *testing.T) {
		m, err := mailer.New(config.MailConfig{From: "reservas@reservas.test"})

		require.NoError(t, err)
		assert.IsType(t, mailer.LogMailer{}, m)
		assert.NoError(t, m.Send(context.Background(), notify.Message{To: "juan@example.com", Subject: "hola"}))
	})

	t.Run("host selects smtp", func(t *testing.T) {
		m, err := mailer.New(smtpConfig())

		require.NoError(t, err)
		assert.IsType(t, &mailer.SMTPMailer{}, m)
	})
}

func TestSMTPMailer_SendRejectsBadAddresses(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr string
	}{
		{name: "recipient", from: "reservas@reservas.test", to: "---", wantErr: `invalid recipient "---"`},
		{name: "sender", from: "sin arroba", to: "juan@example.com", wantErr: "invalid sender address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smtpConfig()
			cfg.From = tt.from
			m, err := mailer.NewSMTPMailer(cfg)
			require.NoError(t, err)

			err = m.Send(context.Background(), notify.Message{To: tt.to, Subject: "Confirmación de reserva #1", HTMLBody: "<p>ok</p>"})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
