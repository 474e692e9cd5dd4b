package bonus

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_bonus

type BonusRepository interface {
	Create(ctx context.Context, b Bonus) (Bonus, error)
	Delete(ctx context.Context, id string) error
	ListByWorker(ctx context.Context, workerID string) ([]Bonus, error)
	List(ctx context.Context, filter Filter) ([]Bonus, int64, error)
	DeleteByWorker(ctx context.Context, workerID string) (int64, error)
}
