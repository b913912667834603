package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/repository"
	"natours/internal/domain/service"
	"natours/internal/errors"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	*resourceService[entity.Booking]

	bookingRepo repository.BookingRepository
	tourRepo    repository.TourRepository
	userRepo    repository.UserRepository
	publisher   service.EventPublisher
	qrcode      service.QRCodeService
	validator   service.Validator
	now         func() time.Time
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo   repository.BookingRepository
	TourRepo      repository.TourRepository
	UserRepo      repository.UserRepository
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Validator     service.Validator
	Logger        *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	srv := &bookingService{
		bookingRepo: params.BookingRepo,
		tourRepo:    params.TourRepo,
		userRepo:    params.UserRepo,
		publisher:   params.Publisher,
		qrcode:      params.QRCodeService,
		validator:   params.Validator,
		now:         time.Now,
		logger:      params.Logger,
	}
	srv.resourceService = newResourceService[entity.Booking](params.BookingRepo, srv.afterWrite)

	return srv
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *bookingService) afterWrite(ctx context.Context, op usecase.WriteOp, _, booking *entity.Booking) error {
	if op == usecase.OpCreated {
		srv.announce(ctx, booking)
	}

	return nil
}

// announce queues the confirmation mail. It never fails the booking itself.
func (srv *bookingService) announce(ctx context.Context, booking *entity.Booking) {
	logger := srv.log(ctx).With(slog.String("booking_id", booking.ID.String()))

	user, err := srv.userRepo.FindByID(ctx, booking.User.ID)
	if err != nil {
		logger.Warn("Skipping booking event, buyer not found", slog.Any("error", err))

		return
	}
	tour, err := srv.tourRepo.FindByID(ctx, booking.Tour.ID)
	if err != nil {
		logger.Warn("Skipping booking event, tour not found", slog.Any("error", err))

		return
	}

	event := &service.BookingCreatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		BookingID: booking.ID.String(),
		TourID:    tour.ID.String(),
		TourName:  tour.Name,
		UserID:    user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Price:     booking.Price,
		CreatedAt: booking.CreatedAt,
	}
	if err := srv.publisher.PublishBookingCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish booking event", slog.Any("error", err))
	}
}

// Checkout records a paid booking from the payment success redirect.
func (srv *bookingService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Booking, error) {
	booking := &entity.Booking{
		Tour:  entity.RefTo[entity.Tour](input.TourID),
		User:  entity.RefTo[entity.User](input.UserID),
		Price: input.Price,
	}
	booking.SetDefaults()

	if err := srv.validator.Validate(booking); err != nil {
		return nil, err
	}
	if err := srv.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (srv *bookingService) MyTours(ctx context.Context, userID uuid.UUID) ([]*entity.Tour, error) {
	bookings, err := srv.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(bookings))
	tourIDs := make([]uuid.UUID, 0, len(bookings))
	for _, booking := range bookings {
		if _, dup := seen[booking.Tour.ID]; dup {
			continue
		}
		seen[booking.Tour.ID] = struct{}{}
		tourIDs = append(tourIDs, booking.Tour.ID)
	}
	if len(tourIDs) == 0 {
		return []*entity.Tour{}, nil
	}

	return srv.tourRepo.FindByIDs(ctx, tourIDs)
}

func (srv *bookingService) Ticket(ctx context.Context, bookingID uuid.UUID, requester *entity.User) ([]byte, error) {
	booking, err := srv.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if requester == nil || (requester.Role != entity.RoleAdmin && requester.ID != booking.User.ID) {
		return nil, domainerrors.ErrForbidden
	}

	png, err := srv.qrcode.GenerateTicketQR(&entity.Ticket{
		BookingID: booking.ID,
		TourID:    booking.Tour.ID,
		UserID:    booking.User.ID,
		Paid:      booking.Paid,
		IssuedAt:  srv.now().UTC(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render ticket")
	}

	return png, nil
}
