package bonus

import "context"

type BonusService interface {
	Add(ctx context.Context, req AddBonusRequest) (BonusResponse, error)
	Delete(ctx context.Context, id string) error
	ListByWorker(ctx context.Context, workerID string) ([]BonusResponse, error)
	List(ctx context.Context, filter Filter) (ListBonusResponse, error)
	Summary(ctx context.Context, workerID string) (WorkerBonusesResponse, error)
}
