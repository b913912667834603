package main

import (
	"context"
	"log/slog"
	"os"

	"natours/config"
	"natours/internal/delivery"
	"natours/internal/delivery/api"
	"natours/internal/delivery/api/middleware"
	"natours/internal/delivery/api/router/handler"
	"natours/internal/delivery/api/validator"
	"natours/internal/domain/service"
	"natours/internal/infra/auth"
	"natours/internal/infra/geo"
	logs "natours/internal/infra/log"
	"natours/internal/infra/mail"
	"natours/internal/infra/metrics"
	"natours/internal/infra/persistence/postgres"
	"natours/internal/infra/qrcode"
	"natours/internal/infra/queue"
	"natours/internal/infra/ratelimit"
	"natours/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		queue.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		ratelimit.NewRedisClient,
		ratelimit.NewLimiter,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTourRepository,
			postgres.NewReviewRepository,
			postgres.NewBookingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geo.NewGeoService,
			qrcode.NewQRCodeService,
			mail.NewComposer,
			mail.NewMailer,
			fx.Annotate(
				validator.New,
				fx.As(new(service.Validator)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPasswordService,
			impl.NewUserService,
			impl.NewTourService,
			impl.NewReviewService,
			impl.NewBookingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewTourHandler,
			handler.NewReviewHandler,
			handler.NewBookingHandler,
			handler.NewViewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
