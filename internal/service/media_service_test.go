package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wenda/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid file headers; DetectContentType only needs the magic bytes.
var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0}
)

func newTestMediaService(t *testing.T) (*MediaService, string) {
	t.Helper()
	root := t.TempDir()
	svc := NewMediaService(&config.Config{MediaRoot: root, MediaMaxUploadMB: 1})
	return svc, root
}

func TestMediaService_Store(t *testing.T) {
	t.Parallel()

	t.Run("png round trip", func(t *testing.T) {
		t.Parallel()
		svc, root := newTestMediaService(t)

		stored, err := svc.Store("cover.png", pngHeader)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stored, "_cover.png"))

		data, err := os.ReadFile(filepath.Join(root, stored))
		require.NoError(t, err)
		assert.Equal(t, pngHeader, data)
	})

	t.Run("jpeg accepted", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestMediaService(t)
		stored, err := svc.Store("photo.jpg", jpegHeader)
		require.NoError(t, err)
		assert.NotEmpty(t, stored)
	})

	t.Run("same filename twice never collides", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestMediaService(t)
		first, err := svc.Store("cover.png", pngHeader)
		require.NoError(t, err)
		second, err := svc.Store("cover.png", pngHeader)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("empty upload rejected", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestMediaService(t)
		_, err := svc.Store("cover.png", nil)
		assertValidationError(t, err)
	})

	t.Run("oversized upload rejected", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestMediaService(t)
		big := append(append([]byte{}, pngHeader...), make([]byte, 2*1024*1024)...)
		_, err := svc.Store("cover.png", big)
		assertValidationError(t, err)
	})

	t.Run("non-image content rejected", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestMediaService(t)
		_, err := svc.Store("cover.png", []byte("<html>not an image</html>"))
		assertValidationError(t, err)
	})

	t.Run("path traversal filename is flattened", func(t *testing.T) {
		t.Parallel()
		svc, root := newTestMediaService(t)
		stored, err := svc.Store("../../etc/passwd.png", pngHeader)
		require.NoError(t, err)
		assert.NotContains(t, stored, "/")
		assert.NotContains(t, stored, "..")
		_, err = os.Stat(filepath.Join(root, stored))
		assert.NoError(t, err)
	})
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"cover.png", "cover.png"},
		{"my photo.jpg", "my_photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"héllo wörld.png", "hllo_wrld.png"},
		{"图片.jpg", "jpg"},
		{"...", ""},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}
