package user

import (
	"context"
	"io"
)

type UserService interface {
	GetProfile(ctx context.Context, id string) (UserResponse, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (UserResponse, error)
	UploadPhoto(ctx context.Context, id string, file io.Reader, filename string) (UserResponse, error)
	ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error
	ListWorkers(ctx context.Context) ([]WorkerSummaryResponse, error)
}
