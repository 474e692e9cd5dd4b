package balance

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_balance

// BalanceRepository aggregates the ledgers with SUM over filtered rows on
// every call; nothing is cached.
type BalanceRepository interface {
	GetByWorker(ctx context.Context, workerID string) (Balance, error)
	// GetTotals aggregates across every worker.
	GetTotals(ctx context.Context) (Balance, error)
}
