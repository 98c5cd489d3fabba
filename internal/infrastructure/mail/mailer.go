package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// Mailer sends plain-text mail over SMTP. With no credentials
// configured it logs the message instead, so development setups never
// need a mail server.
type Mailer struct {
	cfg SMTPConfig
	log zerolog.Logger
}

func NewMailer(cfg SMTPConfig, log zerolog.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		m.log.Warn().
			Str("to", to).
			Str("subject", subject).
			Msg("smtp credentials not configured, mail not sent")
		return nil
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail),
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}
	msg := ""
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + body

	type result struct{ err error }
	done := make(chan result, 1)
	go func() {
		addr := m.cfg.Host + ":" + strconv.Itoa(m.cfg.Port)
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		done <- result{smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{to}, []byte(msg))}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-done:
		if r.err != nil {
			m.log.Error().Err(r.err).Str("to", to).Msg("smtp send failed")
			return fmt.Errorf("send mail: %w", r.err)
		}
	}
	return nil
}
