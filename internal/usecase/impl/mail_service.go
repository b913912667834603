package impl

import (
	"context"
	"log/slog"
	"strings"

	"natours/config"
	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/service"
	"natours/internal/errors"
	"natours/internal/usecase"

	"go.uber.org/fx"
)

const myToursPath = "/my-tours"

// mailService implements the MailUsecase interface.
type mailService struct {
	composer service.MailComposer
	mailer   service.Mailer
	baseURL  string
	logger   *slog.Logger
}

// MailServiceParams holds dependencies for MailService, injected by Fx.
type MailServiceParams struct {
	fx.In

	Composer service.MailComposer
	Mailer   service.Mailer
	Config   *config.Config
	Logger   *slog.Logger
}

// NewMailService is the constructor for mailService.
func NewMailService(params MailServiceParams) usecase.MailUsecase {
	return &mailService{
		composer: params.Composer,
		mailer:   params.Mailer,
		baseURL:  strings.TrimRight(params.Config.HTTP.BaseURL, "/"),
		logger:   params.Logger,
	}
}

func (srv *mailService) SendWelcome(ctx context.Context, event *service.UserSignedUpEvent) error {
	msg, err := srv.composer.Welcome(service.MailRecipient{Name: event.Name, Email: event.Email}, event.URL)
	if err != nil {
		return errors.Join(usecase.ErrUndeliverableMail, err)
	}

	return srv.send(ctx, msg, "welcome")
}

func (srv *mailService) SendBookingConfirmation(ctx context.Context, event *service.BookingCreatedEvent) error {
	msg, err := srv.composer.BookingConfirmation(
		service.MailRecipient{Name: event.Name, Email: event.Email},
		event,
		srv.baseURL+myToursPath,
	)
	if err != nil {
		return errors.Join(usecase.ErrUndeliverableMail, err)
	}

	return srv.send(ctx, msg, "booking_confirmation")
}

func (srv *mailService) send(ctx context.Context, msg *service.MailMessage, kind string) error {
	if err := srv.mailer.Send(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send %s mail", kind)
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Mail sent", slog.String("kind", kind))

	return nil
}
