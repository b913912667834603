package mail

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"natours/config"
	"natours/internal/domain/service"
	"natours/internal/errors"
	"natours/internal/util"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	templateWelcome             = "welcome"
	templatePasswordReset       = "password_reset"
	templateBookingConfirmation = "booking_confirmation"
)

type mailData struct {
	Subject   string
	FirstName string
	URL       string
	ValidFor  string
	TourName  string
	Price     float64
}

type composer struct {
	templates     map[string]*template.Template
	resetValidFor time.Duration
}

// NewComposer parses the embedded mail templates.
func NewComposer(cfg *config.Config) (service.MailComposer, error) {
	c := &composer{
		templates:     make(map[string]*template.Template, 3),
		resetValidFor: 10 * time.Minute,
	}
	if cfg.Auth != nil && cfg.Auth.ResetTokenExpiresIn > 0 {
		c.resetValidFor = cfg.Auth.ResetTokenExpiresIn
	}

	for _, name := range []string{templateWelcome, templatePasswordReset, templateBookingConfirmation} {
		tmpl, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse mail template %s", name)
		}
		c.templates[name] = tmpl
	}

	return c, nil
}

func (c *composer) Welcome(to service.MailRecipient, url string) (*service.MailMessage, error) {
	return c.render(templateWelcome, to, mailData{
		Subject: "Welcome to the Natours Family!",
		URL:     url,
	})
}

func (c *composer) PasswordReset(to service.MailRecipient, url string) (*service.MailMessage, error) {
	validFor := util.FormatDuration(c.resetValidFor)

	return c.render(templatePasswordReset, to, mailData{
		Subject:  "Your password reset token (valid for only " + validFor + ")",
		URL:      url,
		ValidFor: validFor,
	})
}

func (c *composer) BookingConfirmation(to service.MailRecipient, event *service.BookingCreatedEvent, url string) (*service.MailMessage, error) {
	return c.render(templateBookingConfirmation, to, mailData{
		Subject:  "Your booking of " + event.TourName + " is confirmed",
		URL:      url,
		TourName: event.TourName,
		Price:    event.Price,
	})
}

func (c *composer) render(name string, to service.MailRecipient, data mailData) (*service.MailMessage, error) {
	if to.Email == "" {
		return nil, errors.New("mail recipient has no address")
	}
	data.FirstName = firstName(to.Name)

	var buf bytes.Buffer
	if err := c.templates[name].ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, errors.Wrapf(err, "render mail template %s", name)
	}

	return &service.MailMessage{
		To:      to.Email,
		Subject: data.Subject,
		HTML:    buf.String(),
	}, nil
}

func firstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}

	return "there"
}
