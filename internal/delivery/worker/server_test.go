package worker

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"natours/config"
	"natours/internal/delivery/worker/handler"
	"natours/internal/infra/metrics"
	"natours/internal/infra/queue"
	mockUsecase "natours/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// blockingConsumer delivers one unknown event and then waits for cancellation.
type blockingConsumer struct {
	started chan struct{}
}

func (c *blockingConsumer) Consume(ctx context.Context, h queue.Handler) error {
	_ = h(ctx, queue.Message{Type: "tour.deleted", Body: []byte("{}")})
	close(c.started)
	<-ctx.Done()

	return nil
}

func createTestParams(t *testing.T, consumer queue.Consumer) ServerParams {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	cfg := &config.Config{
		Worker:  &config.WorkerConfig{Port: 0},
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}

	return ServerParams{
		Lc:       fxtest.NewLifecycle(t),
		Cfg:      cfg,
		Logger:   logger,
		Metrics:  m,
		Consumer: consumer,
		MailHandler: handler.NewMailHandler(handler.MailHandlerParams{
			MailUC:  mockUsecase.NewMockMailUsecase(t),
			Metrics: m,
			Logger:  logger,
		}),
	}
}

func TestWorkerEndpoints(t *testing.T) {
	e := newEcho(createTestParams(t, &blockingConsumer{started: make(chan struct{})}))

	health := httptest.NewRecorder()
	e.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"status":"success"`)

	scrape := httptest.NewRecorder()
	e.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, scrape.Code)
	assert.Contains(t, scrape.Body.String(), "go_goroutines")
}

func TestWorkerServer_StopDrainsConsumer(t *testing.T) {
	consumer := &blockingConsumer{started: make(chan struct{})}
	srv, err := NewServer(createTestParams(t, consumer))
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(context.Background())
	}()

	select {
	case <-consumer.started:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer never started")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.(*workerServer).stop(stopCtx))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}
}
