package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore writes uploaded image bytes into the served uploads
// directory under randomized names.
//
// Only the extension survives from the caller-supplied filename, and it
// is taken from the base name, so attacker-controlled paths cannot
// escape the directory. Content type and size are not validated.
// TODO: allow-list extensions and cap upload size before exposing this
// beyond the admin panel.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

var ErrEmptyUpload = errors.New("empty upload")

// Save persists the bytes under a collision-resistant filename and
// returns the filename. The caller builds the public URL from the
// request origin.
func (s *ImageStore) Save(data []byte, originalName string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyUpload
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}
