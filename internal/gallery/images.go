package gallery

import (
	"context"
	"fmt"

	"github.com/anasbeautylab/beautylab-backend/internal/media"
	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/storage"
)

const (
	imageFolder     = "gallery"
	thumbnailFolder = "gallery/thumbnails"
)

// maxUploadFiles caps the files accepted per gallery item: one for single
// image types, two for before-after pairs.
const maxUploadFiles = 2

type normalizer interface {
	Normalize(data []byte) (*media.Normalized, error)
}

// Upload is one raw multipart file handed to the pipeline.
type Upload struct {
	Filename string
	Data     []byte
}

// ImagePipeline normalizes uploads and pushes the renditions into blob
// storage, producing the image set stored on a gallery item. Blob writes are
// independent calls: a partial failure can leave orphaned objects behind,
// which is accepted for this domain.
type ImagePipeline struct {
	transformer normalizer
	store       storage.BlobStore
}

func NewImagePipeline(transformer normalizer, store storage.BlobStore) (*ImagePipeline, error) {
	if transformer == nil {
		return nil, fmt.Errorf("media transformer is required")
	}
	if store == nil {
		return nil, fmt.Errorf("blob store is required")
	}
	return &ImagePipeline{transformer: transformer, store: store}, nil
}

// BuildImageSet turns uploads into stored renditions. Before-after items
// take exactly two files (first is before, second is after); every other
// type takes one. The thumbnail always derives from the first file.
func (p *ImagePipeline) BuildImageSet(ctx context.Context, itemType enums.GalleryType, uploads []Upload) (models.GalleryImageSet, error) {
	var set models.GalleryImageSet

	if len(uploads) == 0 {
		return set, pkgerrors.New(pkgerrors.CodeValidation, "at least one image file is required")
	}
	if len(uploads) > maxUploadFiles {
		return set, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("at most %d image files are accepted", maxUploadFiles))
	}

	if itemType == enums.GalleryTypeBeforeAfter {
		if len(uploads) != 2 {
			return set, pkgerrors.New(pkgerrors.CodeValidation, "before-after items require exactly two image files")
		}

		before, thumb, err := p.storePair(ctx, "before", uploads[0], true)
		if err != nil {
			return set, err
		}
		after, _, err := p.storePair(ctx, "after", uploads[1], false)
		if err != nil {
			return set, err
		}
		set.Before = before
		set.After = after
		set.Thumbnail = thumb
		return set, nil
	}

	if len(uploads) != 1 {
		return set, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s items take a single image file", itemType))
	}
	full, thumb, err := p.storePair(ctx, "", uploads[0], true)
	if err != nil {
		return set, err
	}
	set.Full = full
	set.Thumbnail = thumb
	return set, nil
}

// storePair normalizes one upload and stores its full rendition, plus the
// thumbnail when wantThumb is set.
func (p *ImagePipeline) storePair(ctx context.Context, prefix string, upload Upload, wantThumb bool) (*models.ImageRef, *models.ImageRef, error) {
	normalized, err := p.transformer.Normalize(upload.Data)
	if err != nil {
		return nil, nil, err
	}

	name := jpegName(prefix, upload.Filename)
	fullKey := storage.NewKey(imageFolder, name)
	fullObj, err := p.store.Upload(ctx, fullKey, normalized.ContentType, normalized.Image)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store image")
	}
	full := &models.ImageRef{URL: fullObj.URL, Key: fullObj.Key}

	if !wantThumb {
		return full, nil, nil
	}

	thumbKey := storage.NewKey(thumbnailFolder, jpegName("thumb", upload.Filename))
	thumbObj, err := p.store.Upload(ctx, thumbKey, normalized.ContentType, normalized.Thumbnail)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store thumbnail")
	}
	return full, &models.ImageRef{URL: thumbObj.URL, Key: thumbObj.Key}, nil
}

func jpegName(prefix, filename string) string {
	base := filename
	if base == "" {
		base = "image"
	}
	if prefix != "" {
		base = prefix + "-" + base
	}
	return base + ".jpg"
}
