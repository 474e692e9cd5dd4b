package debt

import "context"

type DebtService interface {
	Add(ctx context.Context, req AddDebtRequest) (DebtResponse, error)
	Settle(ctx context.Context, id string) error
	ListByWorker(ctx context.Context, workerID string) ([]DebtResponse, error)
	List(ctx context.Context, filter Filter) (ListDebtResponse, error)
	// Summary is the worker's own view: every debt plus aktif and lunas totals.
	Summary(ctx context.Context, workerID string) (WorkerDebtsResponse, error)
}
