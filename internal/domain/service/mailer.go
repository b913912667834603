package service

import "context"

// MailMessage is a rendered HTML mail.
type MailMessage struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers transactional mail.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// MailRecipient is who a mail greets and where it goes.
type MailRecipient struct {
	Name  string
	Email string
}

// MailComposer renders the transactional mails.
type MailComposer interface {
	Welcome(to MailRecipient, url string) (*MailMessage, error)
	PasswordReset(to MailRecipient, url string) (*MailMessage, error)
	BookingConfirmation(to MailRecipient, event *BookingCreatedEvent, url string) (*MailMessage, error)
}
