package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cooltechhq/hvac-ops-api/internal/application/ports"
	"github.com/cooltechhq/hvac-ops-api/pkg/config"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage writes uploads to a directory on disk. The HTTP layer
// serves the directory under cfg.BaseURL, so the returned URL is directly
// fetchable.
type LocalStorage struct {
	cfg config.StorageConfig
}

// NewLocalStorage builds the store and makes sure the directory exists.
func NewLocalStorage(cfg config.StorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	return &LocalStorage{cfg: cfg}, nil
}

// Save streams the file to disk and returns its public URL. filename must
// already be unique; callers prefix it with the owning record's ID.
func (s *LocalStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// Strip any path components so uploads cannot escape the directory.
	filename = filepath.Base(filename)
	dst := filepath.Join(s.cfg.UploadDir, filename)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/" + filename, nil
}
