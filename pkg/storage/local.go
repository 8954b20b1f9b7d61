package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
)

// localStore keeps blobs on the filesystem. It is the development and
// single-host fallback when no bucket is configured; the API serves the
// directory under baseURL.
type localStore struct {
	dir     string
	baseURL string
}

func newLocalStore(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*localStore, error) {
	dir := cfg.LocalDir
	if dir == "" {
		return nil, errors.New("local storage dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage dir: %w", err)
	}
	if logg != nil {
		logg.Info(logg.WithField(ctx, "dir", dir), "local storage initialized")
	}
	return &localStore{
		dir:     dir,
		baseURL: strings.TrimRight(cfg.LocalBaseURL, "/"),
	}, nil
}

func (s *localStore) Upload(ctx context.Context, key, contentType string, data []byte) (Object, error) {
	path, err := s.resolve(key)
	if err != nil {
		return Object{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Object{}, fmt.Errorf("creating object dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Object{}, fmt.Errorf("writing object: %w", err)
	}
	return Object{Key: key, URL: s.baseURL + "/" + key}, nil
}

func (s *localStore) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing object: %w", err)
	}
	return nil
}

func (s *localStore) Ping(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("storage dir unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %q is not a directory", s.dir)
	}
	return nil
}

// Dir exposes the root so the router can mount a file server over it.
func (s *localStore) Dir() string {
	return s.dir
}

// resolve maps a key onto the storage dir, rejecting anything that would
// escape it.
func (s *localStore) resolve(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.dir, filepath.FromSlash(key)), nil
}
