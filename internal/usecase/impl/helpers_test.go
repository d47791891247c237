package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shopsync/internal/domain/repository"
	"shopsync/internal/metrics"
	mockRepo "shopsync/internal/mocks/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWith(prometheus.NewRegistry())
}

// newPassthroughTxManager returns a transaction manager whose Execute simply
// invokes the callback with the given factory, with no transactional behavior.
func newPassthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}
