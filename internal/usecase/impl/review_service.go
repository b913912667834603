package impl

import (
	"context"
	"log/slog"

	deliverycontext "natours/internal/delivery/context"
	"natours/internal/domain/entity"
	"natours/internal/domain/repository"
	"natours/internal/errors"
	"natours/internal/usecase"
	"natours/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	*resourceService[entity.Review]

	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	srv := &reviewService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
	srv.resourceService = newResourceService[entity.Review](params.ReviewRepo, srv.afterWrite)

	return srv
}

// afterWrite refreshes the tour aggregate after every review write.
// A review moved to another tour refreshes the tour it left as well.
func (srv *reviewService) afterWrite(ctx context.Context, _ usecase.WriteOp, prev, review *entity.Review) error {
	if err := srv.RecalculateRatings(ctx, review.Tour.ID); err != nil {
		return err
	}
	if prev != nil && prev.Tour.ID != review.Tour.ID {
		return srv.RecalculateRatings(ctx, prev.Tour.ID)
	}

	return nil
}

// RecalculateRatings reads the summary and writes it back in one transaction.
// A tour without reviews returns to the default average.
func (srv *reviewService) RecalculateRatings(ctx context.Context, tourID uuid.UUID) error {
	if tourID == uuid.Nil {
		return nil
	}

	var summary entity.RatingSummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		summary, err = repoFactory.NewReviewRepository().RatingSummary(ctx, tourID)
		if err != nil {
			return err
		}

		if summary.Quantity == 0 {
			summary.Average = entity.DefaultRatingsAverage
		}
		summary.Average = util.RoundTo(summary.Average, 1)

		return repoFactory.NewTourRepository().UpdateRatings(ctx, tourID, summary)
	})
	if err != nil {
		return errors.Wrap(err, "failed to recalculate ratings")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Tour ratings recalculated",
		slog.String("tour_id", tourID.String()),
		slog.Int("quantity", summary.Quantity),
		slog.Float64("average", summary.Average),
	)

	return nil
}
