package gallery

import (
	"context"
	"strings"
	"testing"

	"github.com/anasbeautylab/beautylab-backend/internal/media"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/storage"
)

func TestImagePipelineSingleImage(t *testing.T) {
	store := &stubBlobStore{}
	pipeline := mustBuildPipeline(t, &stubNormalizer{}, store)

	set, err := pipeline.BuildImageSet(context.Background(), enums.GalleryTypeStudio, []Upload{
		{Filename: "glow-result", Data: []byte("img")},
	})
	if err != nil {
		t.Fatalf("build image set: %v", err)
	}
	if set.Full == nil || set.Thumbnail == nil {
		t.Fatalf("expected full and thumbnail refs, got %+v", set)
	}
	if set.Before != nil || set.After != nil {
		t.Fatalf("unexpected before/after refs on studio item")
	}
	if !strings.HasPrefix(set.Full.Key, "gallery/") {
		t.Fatalf("full key outside gallery namespace: %s", set.Full.Key)
	}
	if !strings.HasPrefix(set.Thumbnail.Key, "gallery/thumbnails/") {
		t.Fatalf("thumbnail key outside thumbnails namespace: %s", set.Thumbnail.Key)
	}
	if set.Thumbnail.URL == set.Full.URL {
		t.Fatalf("thumbnail and full image should not share a URL")
	}
	if len(store.uploads) != 2 {
		t.Fatalf("expected 2 stored objects, got %d", len(store.uploads))
	}
}

func TestImagePipelineBeforeAfterPair(t *testing.T) {
	store := &stubBlobStore{}
	pipeline := mustBuildPipeline(t, &stubNormalizer{}, store)

	set, err := pipeline.BuildImageSet(context.Background(), enums.GalleryTypeBeforeAfter, []Upload{
		{Filename: "session-start", Data: []byte("a")},
		{Filename: "session-end", Data: []byte("b")},
	})
	if err != nil {
		t.Fatalf("build image set: %v", err)
	}
	if set.Before == nil || set.After == nil || set.Thumbnail == nil {
		t.Fatalf("expected before, after, and thumbnail refs, got %+v", set)
	}
	if !strings.Contains(set.Before.Key, "before-") {
		t.Fatalf("before key missing prefix: %s", set.Before.Key)
	}
	if !strings.Contains(set.After.Key, "after-") {
		t.Fatalf("after key missing prefix: %s", set.After.Key)
	}
	if len(store.uploads) != 3 {
		t.Fatalf("expected 3 stored objects, got %d", len(store.uploads))
	}
}

func TestImagePipelineBeforeAfterNeedsTwoFiles(t *testing.T) {
	pipeline := mustBuildPipeline(t, &stubNormalizer{}, &stubBlobStore{})

	_, err := pipeline.BuildImageSet(context.Background(), enums.GalleryTypeBeforeAfter, []Upload{
		{Filename: "only-one", Data: []byte("a")},
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestImagePipelineRejectsTooManyFiles(t *testing.T) {
	pipeline := mustBuildPipeline(t, &stubNormalizer{}, &stubBlobStore{})

	_, err := pipeline.BuildImageSet(context.Background(), enums.GalleryTypeStudio, []Upload{
		{Data: []byte("a")}, {Data: []byte("b")}, {Data: []byte("c")},
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestImagePipelinePropagatesTransformError(t *testing.T) {
	pipeline := mustBuildPipeline(t, &stubNormalizer{
		err: pkgerrors.New(pkgerrors.CodeUnsupportedMedia, "unsupported image type"),
	}, &stubBlobStore{})

	_, err := pipeline.BuildImageSet(context.Background(), enums.GalleryTypeStudio, []Upload{
		{Data: []byte("not an image")},
	})
	assertCode(t, err, pkgerrors.CodeUnsupportedMedia)
}

func mustBuildPipeline(t *testing.T, n normalizer, store storage.BlobStore) *ImagePipeline {
	t.Helper()
	pipeline, err := NewImagePipeline(n, store)
	if err != nil {
		t.Fatalf("build pipeline: %v", err)
	}
	return pipeline
}

type stubNormalizer struct {
	err error
}

func (s *stubNormalizer) Normalize(data []byte) (*media.Normalized, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &media.Normalized{
		Image:       append([]byte("full:"), data...),
		Thumbnail:   append([]byte("thumb:"), data...),
		ContentType: "image/jpeg",
		Width:       1200,
		Height:      800,
	}, nil
}

type stubBlobStore struct {
	uploads map[string][]byte
}

func (s *stubBlobStore) Upload(ctx context.Context, key, contentType string, data []byte) (storage.Object, error) {
	if s.uploads == nil {
		s.uploads = make(map[string][]byte)
	}
	s.uploads[key] = data
	return storage.Object{Key: key, URL: "https://cdn.test/" + key}, nil
}

func (s *stubBlobStore) Delete(ctx context.Context, key string) error {
	delete(s.uploads, key)
	return nil
}

func (s *stubBlobStore) Ping(ctx context.Context) error { return nil }
