package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	fileService file.FileService
}

func NewUserService(userRepository user.UserRepository, fileService file.FileService) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		fileService:    fileService,
	}
}

func (s *UserServiceImpl) toResponse(u user.User) user.UserResponse {
	var photoURL *string
	if u.Photo != nil && *u.Photo != "" {
		url := s.fileService.URL(*u.Photo)
		photoURL = &url
	}
	return user.NewUserResponse(u, photoURL)
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(u), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	exists, err := s.ExistsByUsername(ctx, req.Username, &id)
	if err != nil {
		return user.UserResponse{}, err
	}
	if exists {
		return user.UserResponse{}, user.ErrDuplicateUsername
	}

	updated, err := s.UserRepository.UpdateProfile(ctx, id, req)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.toResponse(updated), nil
}

// UploadPhoto implements user.UserService. The previous photo is removed once
// the new one is stored.
func (s *UserServiceImpl) UploadPhoto(ctx context.Context, id string, photo io.Reader, filename string) (user.UserResponse, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	key, err := s.fileService.UploadPhoto(ctx, id, photo, filename)
	if err != nil {
		if errors.Is(err, file.ErrUnsupportedImage) {
			return user.UserResponse{}, user.ErrInvalidPhotoType
		}
		return user.UserResponse{}, err
	}

	if err := s.UpdatePhoto(ctx, id, key); err != nil {
		return user.UserResponse{}, err
	}

	if current.Photo != nil && *current.Photo != "" {
		if err := s.fileService.DeleteFile(ctx, *current.Photo); err != nil {
			slog.Warn("failed to delete previous photo", "user_id", id, "error", err)
		}
	}

	current.Photo = &key
	return s.toResponse(current), nil
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, id string, req user.ChangePasswordRequest) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrInvalidCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UpdatePassword(ctx, id, string(hash))
}

// ListWorkers implements user.UserService.
func (s *UserServiceImpl) ListWorkers(ctx context.Context) ([]user.WorkerSummaryResponse, error) {
	workers, err := s.UserRepository.ListWorkers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.WorkerSummaryResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, user.NewWorkerSummaryResponse(w))
	}
	return responses, nil
}
