package enums

import "fmt"

// GalleryType describes how a gallery item presents its images.
type GalleryType string

const (
	GalleryTypeBeforeAfter GalleryType = "before-after"
	GalleryTypeStudio      GalleryType = "studio"
	GalleryTypeInstagram   GalleryType = "instagram"
)

var validGalleryTypes = []GalleryType{
	GalleryTypeBeforeAfter,
	GalleryTypeStudio,
	GalleryTypeInstagram,
}

func (g GalleryType) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GalleryType.
func (g GalleryType) IsValid() bool {
	for _, candidate := range validGalleryTypes {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGalleryType converts raw input into a GalleryType.
func ParseGalleryType(value string) (GalleryType, error) {
	for _, candidate := range validGalleryTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gallery type %q", value)
}
