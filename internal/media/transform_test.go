package media

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
)

var testMediaConfig = config.MediaConfig{
	MaxUploadMB:      10,
	ImageMaxSize:     1200,
	ThumbnailSize:    300,
	ImageQuality:     80,
	ThumbnailQuality: 60,
}

func TestNormalizeScalesDownOversizedImage(t *testing.T) {
	data := encodeTestPNG(t, 2400, 1200)
	out, err := NewTransformer(testMediaConfig).Normalize(data)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if out.ContentType != "image/jpeg" {
		t.Fatalf("expected jpeg output, got %s", out.ContentType)
	}
	if out.Width != 1200 || out.Height != 600 {
		t.Fatalf("expected 1200x600, got %dx%d", out.Width, out.Height)
	}

	full, err := jpeg.Decode(bytes.NewReader(out.Image))
	if err != nil {
		t.Fatalf("decode full rendition: %v", err)
	}
	if b := full.Bounds(); b.Dx() != 1200 || b.Dy() != 600 {
		t.Fatalf("full rendition bounds %v", b)
	}

	thumb, err := jpeg.Decode(bytes.NewReader(out.Thumbnail))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if b := thumb.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Fatalf("thumbnail bounds %v", b)
	}
}

func TestNormalizeNeverEnlargesSmallImage(t *testing.T) {
	data := encodeTestJPEG(t, 100, 50)
	out, err := NewTransformer(testMediaConfig).Normalize(data)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out.Width != 100 || out.Height != 50 {
		t.Fatalf("expected original 100x50 kept, got %dx%d", out.Width, out.Height)
	}

	// thumbnail is still a 300x300 square even for small sources
	thumb, err := jpeg.Decode(bytes.NewReader(out.Thumbnail))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if b := thumb.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Fatalf("thumbnail bounds %v", b)
	}
}

func TestNormalizeRejectsUnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewPaletted(image.Rect(0, 0, 10, 10), []color.Color{color.White, color.Black})
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}

	_, err := NewTransformer(testMediaConfig).Normalize(buf.Bytes())
	assertUnsupported(t, err)
}

func TestNormalizeRejectsNonImageBytes(t *testing.T) {
	_, err := NewTransformer(testMediaConfig).Normalize([]byte("<html>not an image</html>"))
	assertUnsupported(t, err)
}

func TestNormalizeRejectsEmptyUpload(t *testing.T) {
	_, err := NewTransformer(testMediaConfig).Normalize(nil)
	assertUnsupported(t, err)
}

func TestNormalizeRejectsTruncatedImage(t *testing.T) {
	data := encodeTestJPEG(t, 400, 400)
	_, err := NewTransformer(testMediaConfig).Normalize(data[:len(data)/2])
	assertUnsupported(t, err)
}

func assertUnsupported(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected unsupported media error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnsupportedMedia {
		t.Fatalf("expected unsupported media error, got %v", err)
	}
}

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, newTestImage(w, h)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeTestJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, newTestImage(w, h), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func newTestImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}
