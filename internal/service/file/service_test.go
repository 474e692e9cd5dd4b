package file

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (FileService, string) {
	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)
	return NewFileService(local), dir
}

func pngOf(t *testing.T, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadPhoto_ResizesToFit(t *testing.T) {
	svc, dir := newTestService(t)

	key, err := svc.UploadPhoto(context.Background(), "user-1", bytes.NewReader(pngOf(t, 1200, 600)), "me.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "photos/user-1_"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "/uploads/"+key, svc.URL(key))

	stored, err := imaging.Open(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, 300, stored.Bounds().Dx())
	assert.Equal(t, 150, stored.Bounds().Dy())

	require.NoError(t, svc.DeleteFile(context.Background(), key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadPhoto_SmallImageKeepsSize(t *testing.T) {
	svc, dir := newTestService(t)

	key, err := svc.UploadPhoto(context.Background(), "user-1", bytes.NewReader(pngOf(t, 120, 80)), "me.jpg")
	require.NoError(t, err)

	stored, err := imaging.Open(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, 120, stored.Bounds().Dx())
	assert.Equal(t, 80, stored.Bounds().Dy())
}

func TestUploadPhoto_RejectsUnsupported(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UploadPhoto(context.Background(), "user-1", strings.NewReader("GIF89a"), "me.gif")
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = svc.UploadPhoto(context.Background(), "user-1", strings.NewReader("not an image"), "me.png")
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
