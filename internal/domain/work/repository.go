package work

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_work

type WorkRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	// UpdateStatus overwrites the status whatever it currently is.
	UpdateStatus(ctx context.Context, id string, status Status) error
	List(ctx context.Context, filter Filter) ([]Entry, int64, error)
	DeleteByWorker(ctx context.Context, workerID string) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
