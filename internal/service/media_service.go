package service

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"wenda/internal/config"
	"wenda/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultMediaRoot        = "assets/medias"
	DefaultMediaMaxUploadMB = 10
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// MediaService persists uploaded question images under the media root. Files
// are stored verbatim; no resizing or re-encoding happens on this path.
type MediaService struct {
	root     string
	maxBytes int64
}

func NewMediaService(cfg *config.Config) *MediaService {
	root := DefaultMediaRoot
	maxUploadMB := DefaultMediaMaxUploadMB

	if cfg != nil {
		if cfg.MediaRoot != "" {
			root = cfg.MediaRoot
		}
		if cfg.MediaMaxUploadMB > 0 {
			maxUploadMB = cfg.MediaMaxUploadMB
		}
	}

	return &MediaService{
		root:     root,
		maxBytes: int64(maxUploadMB) * 1024 * 1024,
	}
}

// Store validates and writes an uploaded image, returning the stored
// filename. The name is the sanitized client filename behind a uuid prefix,
// so concurrent uploads of the same file never collide.
func (s *MediaService) Store(filename string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(content)) > s.maxBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxBytes/(1024*1024)))
	}

	detected := http.DetectContentType(content)
	switch detected {
	case "image/jpeg", "image/png":
	default:
		return "", models.NewValidationError("Only JPEG and PNG images are allowed")
	}

	name := sanitizeFilename(filename)
	if name == "" {
		name = "upload" + extensionFor(detected)
	}
	stored := uuid.New().String() + "_" + name

	if err := os.MkdirAll(s.root, 0o750); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := os.WriteFile(filepath.Join(s.root, stored), content, 0o600); err != nil {
		return "", models.NewInternalError(err)
	}
	return stored, nil
}

// sanitizeFilename strips path components and reduces the name to a safe
// ASCII subset, mirroring werkzeug's secure_filename contract.
func sanitizeFilename(filename string) string {
	name := filepath.Base(filepath.ToSlash(filename))
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "." || name == ".." {
		return ""
	}
	return name
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	default:
		return ".jpg"
	}
}
