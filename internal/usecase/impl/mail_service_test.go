package impl

import (
	"context"
	"testing"
	"time"

	"natours/internal/domain/service"
	"natours/internal/errors"
	mockService "natours/internal/mocks/service"
	"natours/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mailServiceFixtures struct {
	service  usecase.MailUsecase
	composer *mockService.MockMailComposer
	mailer   *mockService.MockMailer
}

func createTestMailService(t *testing.T) mailServiceFixtures {
	fx := mailServiceFixtures{
		composer: mockService.NewMockMailComposer(t),
		mailer:   mockService.NewMockMailer(t),
	}
	fx.service = NewMailService(MailServiceParams{
		Composer: fx.composer,
		Mailer:   fx.mailer,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return fx
}

var annRecipient = service.MailRecipient{Name: "Ann Smith", Email: "ann@example.com"}

func TestMailService_SendWelcome(t *testing.T) {
	ctx := context.Background()
	event := &service.UserSignedUpEvent{UserID: "u-1", Name: "Ann Smith", Email: "ann@example.com", URL: testBaseURL + "/me"}

	t.Run("delivers", func(t *testing.T) {
		fx := createTestMailService(t)
		msg := &service.MailMessage{To: "ann@example.com", Subject: "Welcome to the Natours Family!"}
		fx.composer.EXPECT().Welcome(annRecipient, testBaseURL+"/me").Return(msg, nil)
		fx.mailer.EXPECT().Send(ctx, msg).Return(nil)

		require.NoError(t, fx.service.SendWelcome(ctx, event))
	})

	t.Run("render failure is undeliverable", func(t *testing.T) {
		fx := createTestMailService(t)
		fx.composer.EXPECT().Welcome(mock.Anything, mock.Anything).Return(nil, errors.New("template: no such template"))

		err := fx.service.SendWelcome(ctx, event)

		assert.ErrorIs(t, err, usecase.ErrUndeliverableMail)
	})

	t.Run("transport failure can be retried", func(t *testing.T) {
		fx := createTestMailService(t)
		smtpErr := errors.New("421 service not available")
		fx.composer.EXPECT().Welcome(mock.Anything, mock.Anything).Return(&service.MailMessage{}, nil)
		fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(smtpErr)

		err := fx.service.SendWelcome(ctx, event)

		assert.ErrorIs(t, err, smtpErr)
		assert.NotErrorIs(t, err, usecase.ErrUndeliverableMail)
		assert.Contains(t, err.Error(), "failed to send welcome mail")
	})
}

func TestMailService_SendBookingConfirmation(t *testing.T) {
	fx := createTestMailService(t)
	ctx := context.Background()
	event := &service.BookingCreatedEvent{
		BookingID: "b-1",
		TourName:  "The Sea Explorer",
		Name:      "Ann Smith",
		Email:     "ann@example.com",
		Price:     497,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	msg := &service.MailMessage{To: "ann@example.com", Subject: "Your booking"}

	fx.composer.EXPECT().BookingConfirmation(annRecipient, event, testBaseURL+"/my-tours").Return(msg, nil)
	fx.mailer.EXPECT().Send(ctx, msg).Return(nil)

	require.NoError(t, fx.service.SendBookingConfirmation(ctx, event))
}
