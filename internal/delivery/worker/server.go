package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"natours/config"
	"natours/internal/delivery"
	"natours/internal/delivery/api/response"
	"natours/internal/delivery/middleware"
	"natours/internal/delivery/worker/handler"
	"natours/internal/domain/lifecycle"
	"natours/internal/errors"
	"natours/internal/infra/metrics"
	"natours/internal/infra/queue"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type workerServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	server   *echo.Echo
	consumer queue.Consumer
	handler  *handler.MailHandler

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Consumer    queue.Consumer
	MailHandler *handler.MailHandler
}

// NewServer creates the mail worker: a queue consumer plus a small health and metrics listener
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:      params.Cfg,
		logger:   params.Logger,
		server:   newEcho(params),
		consumer: params.Consumer,
		handler:  params.MailHandler,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return response.Status(c, http.StatusOK)
	})

	metricsPath := "/metrics"
	if params.Cfg.Metrics != nil && params.Cfg.Metrics.Path != "" {
		metricsPath = params.Cfg.Metrics.Path
	}
	e.GET(metricsPath, echo.WrapHandler(params.Metrics.Handler()))

	return e
}

// Serve consumes mail events until the worker is stopped
func (s *workerServer) Serve(ctx context.Context) error {
	defer close(s.done)

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.logger.Info("Starting mail consumer")

		return s.consumer.Consume(ctx, s.handler.Handle)
	})

	group.Go(func() error {
		hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.Port))
		s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))
		if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.WithStack(err)
		}

		return nil
	})

	// Either side ending takes the other down with it.
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelShutdown()

		return errors.WithStack(s.server.Shutdown(shutdownCtx))
	})

	return group.Wait()
}

// stop cancels the consumer and waits for Serve to drain
func (s *workerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down mail worker")

	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
