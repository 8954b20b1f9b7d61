package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
)

const (
	gcsAPIBase    = "https://storage.googleapis.com/storage/v1"
	gcsUploadBase = "https://storage.googleapis.com/upload/storage/v1"
	gcsPublicBase = "https://storage.googleapis.com"
	pingTimeout   = 5 * time.Second
)

// gcsStore talks to the Cloud Storage JSON API directly with a cached OAuth
// token, avoiding the heavyweight SDK for the handful of calls we make.
type gcsStore struct {
	httpClient  *http.Client
	bucket      string
	tokenSource *tokenSource
}

func newGCSStore(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*gcsStore, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("gcs bucket name is required")
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	var ts *tokenSource
	var err error
	switch {
	case cfg.CredentialsJSON != "":
		ts, err = newServiceAccountTokenSource(httpClient, cfg.CredentialsJSON)
	case cfg.ApplicationCredentials != "":
		bytes, readErr := os.ReadFile(cfg.ApplicationCredentials)
		if readErr != nil {
			return nil, fmt.Errorf("reading credentials file: %w", readErr)
		}
		ts, err = newServiceAccountTokenSource(httpClient, string(bytes))
	default:
		ts = newMetadataTokenSource(httpClient)
	}
	if err != nil {
		return nil, err
	}

	store := &gcsStore{
		httpClient:  httpClient,
		bucket:      cfg.BucketName,
		tokenSource: ts,
	}

	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("gcs health check failed: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "gcs storage initialized")
	}

	return store, nil
}

// Upload streams the blob into the bucket via the media upload endpoint and
// returns the public object URL.
func (s *gcsStore) Upload(ctx context.Context, key, contentType string, data []byte) (Object, error) {
	if s == nil || s.tokenSource == nil {
		return Object{}, errors.New("gcs store not initialized")
	}
	token, err := s.tokenSource.Token(ctx)
	if err != nil {
		return Object{}, err
	}

	u := fmt.Sprintf(
		"%s/b/%s/o?uploadType=media&name=%s",
		gcsUploadBase,
		url.PathEscape(s.bucket),
		url.QueryEscape(key),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return Object{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Object{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Object{}, apiError("gcs upload failed", resp)
	}

	return Object{
		Key: key,
		URL: fmt.Sprintf("%s/%s/%s", gcsPublicBase, s.bucket, key),
	}, nil
}

// Delete removes the object. A missing object is not an error; delete is
// used for cleanup paths that may run twice.
func (s *gcsStore) Delete(ctx context.Context, key string) error {
	if s == nil || s.tokenSource == nil {
		return errors.New("gcs store not initialized")
	}
	token, err := s.tokenSource.Token(ctx)
	if err != nil {
		return err
	}

	u := fmt.Sprintf(
		"%s/b/%s/o/%s",
		gcsAPIBase,
		url.PathEscape(s.bucket),
		url.PathEscape(key),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return apiError("gcs delete failed", resp)
	}
	return nil
}

func (s *gcsStore) Ping(ctx context.Context) error {
	if s == nil || s.tokenSource == nil {
		return errors.New("gcs store not initialized")
	}
	if s.bucket == "" {
		return errors.New("gcs bucket not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	token, err := s.tokenSource.Token(ctx)
	if err != nil {
		return err
	}

	// Object-level check; requires storage.objects.list only.
	u := fmt.Sprintf("%s/b/%s/o?maxResults=1", gcsAPIBase, url.PathEscape(s.bucket))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return apiError("gcs object check failed", resp)
	}
	return nil
}

func apiError(msg string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	if len(b) > 0 {
		return fmt.Errorf("%s: %s: %s", msg, resp.Status, strings.TrimSpace(string(b)))
	}
	return fmt.Errorf("%s: %s", msg, resp.Status)
}
