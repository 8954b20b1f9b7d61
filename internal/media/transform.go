package media

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"

	// webp uploads are decode-only; output is always JPEG.
	_ "golang.org/x/image/webp"
)

// allowedTypes is the sniffed content-type allow-list for uploads. The
// declared multipart content type is ignored; only the bytes count.
var allowedTypes = []string{"image/jpeg", "image/png", "image/webp"}

// Normalized is the result of pushing an upload through the image pipeline:
// a bounded full-size rendition plus a square thumbnail, both JPEG.
type Normalized struct {
	Image       []byte
	Thumbnail   []byte
	ContentType string
	Width       int
	Height      int
}

// Transformer normalizes raw uploads according to the configured limits.
type Transformer struct {
	cfg config.MediaConfig
}

func NewTransformer(cfg config.MediaConfig) *Transformer {
	return &Transformer{cfg: cfg}
}

// Normalize sniffs, decodes, and re-encodes an upload. The full rendition is
// scaled down to fit the configured bounding box (never enlarged); the
// thumbnail is a center-cropped square.
func (t *Transformer) Normalize(data []byte) (*Normalized, error) {
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnsupportedMedia, "empty image upload")
	}

	detected := mimetype.Detect(data)
	if !isAllowed(detected) {
		return nil, pkgerrors.New(
			pkgerrors.CodeUnsupportedMedia,
			fmt.Sprintf("unsupported image type %s; accepted types are jpeg, png, webp", detected.String()),
		)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnsupportedMedia, err, "image data could not be decoded")
	}

	full := imaging.Fit(img, t.cfg.ImageMaxSize, t.cfg.ImageMaxSize, imaging.Lanczos)
	thumb := imaging.Fill(img, t.cfg.ThumbnailSize, t.cfg.ThumbnailSize, imaging.Center, imaging.Lanczos)

	fullBytes, err := encodeJPEG(full, t.cfg.ImageQuality)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode image")
	}
	thumbBytes, err := encodeJPEG(thumb, t.cfg.ThumbnailQuality)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode thumbnail")
	}

	bounds := full.Bounds()
	return &Normalized{
		Image:       fullBytes,
		Thumbnail:   thumbBytes,
		ContentType: "image/jpeg",
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

func isAllowed(detected *mimetype.MIME) bool {
	for _, allowed := range allowedTypes {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
