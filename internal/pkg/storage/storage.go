package storage

import (
	"context"
	"io"
)

// FileStorage stores uploaded files under slash-separated keys.
type FileStorage interface {
	// Upload writes file under path and returns the stored key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file, missing files are not an error
	Delete(ctx context.Context, path string) error

	// URL returns the public address of a stored key
	URL(path string) string
}
