package enums

import "fmt"

// GalleryCategory classifies a showcased gallery item.
type GalleryCategory string

const (
	GalleryCategoryAcne      GalleryCategory = "acne"
	GalleryCategoryAntiAging GalleryCategory = "anti-aging"
	GalleryCategoryGlow      GalleryCategory = "glow"
	GalleryCategoryLash      GalleryCategory = "lash"
	GalleryCategoryStudio    GalleryCategory = "studio"
	GalleryCategoryInstagram GalleryCategory = "instagram"
)

var validGalleryCategories = []GalleryCategory{
	GalleryCategoryAcne,
	GalleryCategoryAntiAging,
	GalleryCategoryGlow,
	GalleryCategoryLash,
	GalleryCategoryStudio,
	GalleryCategoryInstagram,
}

func (g GalleryCategory) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GalleryCategory.
func (g GalleryCategory) IsValid() bool {
	for _, candidate := range validGalleryCategories {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGalleryCategory converts raw input into a GalleryCategory.
func ParseGalleryCategory(value string) (GalleryCategory, error) {
	for _, candidate := range validGalleryCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gallery category %q", value)
}
