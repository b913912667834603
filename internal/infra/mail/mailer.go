// Package mail delivers transactional mail over SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"log/slog"
	"mime"
	"net"
	netmail "net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"natours/config"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/service"
	"natours/internal/errors"
)

const (
	ProviderSMTP = "smtp"
	ProviderLog  = "log"
)

// NewMailer selects the mail transport from config. Development defaults to logging.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil {
		return NewLogMailer(logger), nil
	}

	switch strings.ToLower(cfg.Mail.Provider) {
	case ProviderSMTP:
		return NewSMTPMailer(cfg.Mail)
	case ProviderLog, "":
		return NewLogMailer(logger), nil
	default:
		return nil, errors.Errorf("unsupported mail provider: %s", cfg.Mail.Provider)
	}
}

type smtpMailer struct {
	addr   string
	host   string
	from   *netmail.Address
	auth   smtp.Auth
	dialer *net.Dialer
	now    func() time.Time
}

// NewSMTPMailer creates a mailer that speaks SMTP with STARTTLS when offered.
func NewSMTPMailer(cfg *config.MailConfig) (service.Mailer, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, errors.New("smtp host and port must be provided")
	}

	from, err := netmail.ParseAddress(cfg.From)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid mail sender %q", cfg.From)
	}

	m := &smtpMailer{
		addr:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		host:   cfg.Host,
		from:   from,
		dialer: &net.Dialer{Timeout: 10 * time.Second},
		now:    time.Now,
	}
	if cfg.Username != "" {
		m.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return m, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	to, err := netmail.ParseAddress(msg.To)
	if err != nil {
		return errors.Wrapf(err, "invalid mail recipient %q", msg.To)
	}

	conn, err := m.dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp server")
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to start smtp session")
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12}); err != nil {
			return errors.Wrap(err, "smtp starttls failed")
		}
	}
	if m.auth != nil {
		if err := client.Auth(m.auth); err != nil {
			return errors.Wrap(err, "smtp auth failed")
		}
	}

	if err := client.Mail(m.from.Address); err != nil {
		return errors.Wrap(err, "smtp MAIL FROM failed")
	}
	if err := client.Rcpt(to.Address); err != nil {
		return errors.Wrap(err, "smtp RCPT TO failed")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp DATA failed")
	}
	if _, err := w.Write(buildMessage(m.from, to, msg, m.now())); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "failed to write mail body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to finish mail body")
	}

	return errors.WithStack(client.Quit())
}

// buildMessage renders an RFC 5322 message with an HTML body.
func buildMessage(from, to *netmail.Address, msg *service.MailMessage, now time.Time) []byte {
	var buf bytes.Buffer
	header := func(key, value string) {
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString("\r\n")
	}

	header("From", from.String())
	header("To", to.String())
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	header("Content-Transfer-Encoding", "8bit")
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(strings.ReplaceAll(msg.HTML, "\r\n", "\n"), "\n", "\r\n"))

	return buf.Bytes()
}

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that only logs what it would send.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).InfoContext(ctx, "Mail not delivered, log provider in use",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)

	return nil
}
