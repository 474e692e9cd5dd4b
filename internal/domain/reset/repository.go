package reset

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_reset

type ResetRepository interface {
	// ResetWorker snapshots the prior balances into a Record, deletes the
	// worker's work entries and bonuses and deactivates active debts. All of
	// it commits or none of it does.
	ResetWorker(ctx context.Context, workerID string, description string) (Result, error)
	List(ctx context.Context, page, limit int) ([]Record, int64, error)
}
