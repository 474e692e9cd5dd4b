package debt

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_debt

type DebtRepository interface {
	Create(ctx context.Context, d Debt) (Debt, error)
	GetByID(ctx context.Context, id string) (Debt, error)
	// Settle marks the debt lunas whatever its current status.
	Settle(ctx context.Context, id string) error
	ListByWorker(ctx context.Context, workerID string) ([]Debt, error)
	// List pages through all debts, newest first, with worker names.
	List(ctx context.Context, filter Filter) ([]Debt, int64, error)
	// DeactivateActiveByWorker moves every aktif debt of the worker to nonaktif.
	DeactivateActiveByWorker(ctx context.Context, workerID string) (int64, error)
}
