package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
)

// Object identifies a stored blob: the key used to manage it and the URL
// clients fetch it from.
type Object struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// BlobStore is the write surface of the media backend. Keys are
// server-generated via NewKey; callers never construct them by hand.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (Object, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// New selects the blob backend from configuration: a configured bucket name
// means GCS, otherwise blobs land on the local filesystem.
func New(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (BlobStore, error) {
	if cfg.UseBucket() {
		return newGCSStore(ctx, cfg, logg)
	}
	return newLocalStore(ctx, cfg, logg)
}

// NewKey builds a collision-resistant object key under folder. The original
// filename is kept (sanitized) so keys stay human-readable.
func NewKey(folder, filename string) string {
	base := sanitizeFilename(filename)
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return path.Join(folder, fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), base))
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	// path.Base collapses empty and dot-only names to "." or ".."; those
	// must hit the fallback, not survive as key material.
	if name == "." || name == ".." {
		name = ""
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
