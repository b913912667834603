package impl

import (
	"context"
	"testing"

	"natours/internal/domain/entity"
	"natours/internal/errors"
	mockRepo "natours/internal/mocks/repository"
	"natours/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
	}
	fx.service = NewReviewService(ReviewServiceParams{
		TxManager:  fx.txManager,
		ReviewRepo: fx.reviewRepo,
		Logger:     newDiscardLogger(),
	})

	return fx
}

// expectRecalculation wires a transaction whose repositories report summary for tourID
// and expect the stored aggregate to be want.
func expectRecalculation(t *testing.T, fx reviewServiceFixtures, tourID uuid.UUID, summary, want entity.RatingSummary) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txReviews := mockRepo.NewMockReviewRepository(t)
	txTours := mockRepo.NewMockTourRepository(t)

	factory.EXPECT().NewReviewRepository().Return(txReviews)
	factory.EXPECT().NewTourRepository().Return(txTours)
	txReviews.EXPECT().RatingSummary(context.Background(), tourID).Return(summary, nil)
	txTours.EXPECT().UpdateRatings(context.Background(), tourID, want).Return(nil)

	runInTx(fx.txManager, factory)
}

func TestReviewService_RecalculateRatings(t *testing.T) {
	tests := []struct {
		name    string
		summary entity.RatingSummary
		want    entity.RatingSummary
	}{
		{
			name:    "no reviews falls back to the default",
			summary: entity.RatingSummary{},
			want:    entity.RatingSummary{Quantity: 0, Average: 4.5},
		},
		{
			name:    "average rounded to one decimal",
			summary: entity.RatingSummary{Quantity: 3, Average: 4.666666},
			want:    entity.RatingSummary{Quantity: 3, Average: 4.7},
		},
		{
			name:    "single review",
			summary: entity.RatingSummary{Quantity: 1, Average: 2},
			want:    entity.RatingSummary{Quantity: 1, Average: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)
			tourID := uuid.New()
			expectRecalculation(t, fx, tourID, tt.summary, tt.want)

			require.NoError(t, fx.service.RecalculateRatings(context.Background(), tourID))
		})
	}
}

func TestReviewService_RecalculateRatings_PropagatesStoreError(t *testing.T) {
	fx := createTestReviewService(t)
	tourID := uuid.New()
	storeErr := errors.New("connection reset")

	factory := mockRepo.NewMockRepositoryFactory(t)
	txReviews := mockRepo.NewMockReviewRepository(t)
	factory.EXPECT().NewReviewRepository().Return(txReviews)
	txReviews.EXPECT().RatingSummary(context.Background(), tourID).Return(entity.RatingSummary{}, storeErr)
	runInTx(fx.txManager, factory)

	err := fx.service.RecalculateRatings(context.Background(), tourID)

	assert.ErrorIs(t, err, storeErr)
}

func TestReviewService_WritesRecalculateTheirTour(t *testing.T) {
	ctx := context.Background()
	tourID := uuid.New()
	review := &entity.Review{
		ID:     uuid.New(),
		Review: "Amazing!",
		Rating: 5,
		Tour:   entity.RefTo[entity.Tour](tourID),
		User:   entity.RefTo[entity.User](uuid.New()),
	}

	t.Run("create", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.reviewRepo.EXPECT().Create(ctx, review).Return(nil)
		expectRecalculation(t, fx, tourID, entity.RatingSummary{Quantity: 1, Average: 5}, entity.RatingSummary{Quantity: 1, Average: 5})

		require.NoError(t, fx.service.Create(ctx, review))
	})

	t.Run("delete", func(t *testing.T) {
		fx := createTestReviewService(t)
		fx.reviewRepo.EXPECT().DeleteByID(ctx, review.ID).Return(review, nil)
		expectRecalculation(t, fx, tourID, entity.RatingSummary{}, entity.RatingSummary{Average: 4.5})

		require.NoError(t, fx.service.Delete(ctx, review.ID))
	})
}

func TestReviewService_UpdateRecalculatesBothToursWhenMoved(t *testing.T) {
	ctx := context.Background()
	fromTour, toTour := uuid.New(), uuid.New()
	stored := entity.Review{
		ID:     uuid.New(),
		Review: "Amazing!",
		Rating: 4,
		Tour:   entity.RefTo[entity.Tour](fromTour),
		User:   entity.RefTo[entity.User](uuid.New()),
	}

	fx := createTestReviewService(t)
	fx.reviewRepo.EXPECT().UpdateByID(ctx, stored.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, mutate func(*entity.Review) error) (*entity.Review, error) {
			doc := stored
			if err := mutate(&doc); err != nil {
				return nil, err
			}

			return &doc, nil
		})

	factory := mockRepo.NewMockRepositoryFactory(t)
	txReviews := mockRepo.NewMockReviewRepository(t)
	txTours := mockRepo.NewMockTourRepository(t)
	factory.EXPECT().NewReviewRepository().Return(txReviews)
	factory.EXPECT().NewTourRepository().Return(txTours)
	txReviews.EXPECT().RatingSummary(ctx, toTour).Return(entity.RatingSummary{Quantity: 1, Average: 4}, nil).Once()
	txReviews.EXPECT().RatingSummary(ctx, fromTour).Return(entity.RatingSummary{}, nil).Once()
	txTours.EXPECT().UpdateRatings(ctx, toTour, entity.RatingSummary{Quantity: 1, Average: 4}).Return(nil).Once()
	txTours.EXPECT().UpdateRatings(ctx, fromTour, entity.RatingSummary{Average: 4.5}).Return(nil).Once()
	runInTx(fx.txManager, factory)

	updated, err := fx.service.Update(ctx, stored.ID, func(doc *entity.Review) error {
		doc.Tour = entity.RefTo[entity.Tour](toTour)

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, toTour, updated.Tour.ID)
}

func TestReviewService_UpdateInPlaceRecalculatesOnce(t *testing.T) {
	ctx := context.Background()
	tourID := uuid.New()
	stored := entity.Review{ID: uuid.New(), Rating: 2, Tour: entity.RefTo[entity.Tour](tourID)}

	fx := createTestReviewService(t)
	fx.reviewRepo.EXPECT().UpdateByID(ctx, stored.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, mutate func(*entity.Review) error) (*entity.Review, error) {
			doc := stored
			if err := mutate(&doc); err != nil {
				return nil, err
			}

			return &doc, nil
		})
	expectRecalculation(t, fx, tourID, entity.RatingSummary{Quantity: 1, Average: 5}, entity.RatingSummary{Quantity: 1, Average: 5})

	_, err := fx.service.Update(ctx, stored.ID, func(doc *entity.Review) error {
		doc.Rating = 5

		return nil
	})

	require.NoError(t, err)
}
