package user

import (
	"context"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_user

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	// GetWorker returns ErrWorkerNotFound unless id resolves to a worker.
	GetWorker(ctx context.Context, id string) (User, error)
	ExistsByUsername(ctx context.Context, username string, excludeID *string) (bool, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (User, error)
	UpdatePhoto(ctx context.Context, id string, photo string) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	ListWorkers(ctx context.Context) ([]WorkerSummary, error)
	CountWorkers(ctx context.Context) (int64, error)
}
