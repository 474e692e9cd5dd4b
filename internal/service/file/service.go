package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

const (
	PhotoMaxWidth  = 300
	PhotoMaxHeight = 300
)

var (
	ErrUnsupportedImage = errors.New("invalid file type: only jpg, jpeg, png allowed")
)

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

type FileService interface {
	// UploadPhoto stores a profile photo scaled to fit 300x300 and returns its key
	UploadPhoto(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	// DeleteFile removes a stored file
	DeleteFile(ctx context.Context, key string) error

	// URL is the public address of a stored key
	URL(key string) string
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadPhoto implements FileService.
func (s *fileServiceImpl) UploadPhoto(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedPhotoExts[ext] {
		return "", ErrUnsupportedImage
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	thumbnail := imaging.Fit(img, PhotoMaxWidth, PhotoMaxHeight, imaging.Lanczos)

	format := imaging.JPEG
	contentType := "image/jpeg"
	if ext == ".png" {
		format = imaging.PNG
		contentType = "image/png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumbnail, format, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to encode photo: %w", err)
	}

	key := path.Join("photos", fmt.Sprintf("%s_%s%s", userID, uuid.NewString(), ext))
	uploaded, err := s.storage.Upload(ctx, &buf, key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return uploaded, nil
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}

// URL implements FileService.
func (s *fileServiceImpl) URL(key string) string {
	return s.storage.URL(key)
}
