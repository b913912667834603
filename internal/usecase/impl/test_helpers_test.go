package impl

import (
	"context"
	"io"
	"log/slog"

	"natours/config"
	"natours/internal/domain/repository"
	mockRepo "natours/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const testBaseURL = "http://127.0.0.1:3000"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
	}
	cfg.HTTP.BaseURL = testBaseURL + "/"

	return cfg
}

// runInTx makes the transaction manager hand factory to the callback and return its error.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(context.Background(), mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
