package enums

import "fmt"

// ServiceCategory classifies a bookable offering.
type ServiceCategory string

const (
	ServiceCategoryFacial  ServiceCategory = "facial"
	ServiceCategoryLash    ServiceCategory = "lash"
	ServiceCategoryPeel    ServiceCategory = "peel"
	ServiceCategoryWaxing  ServiceCategory = "waxing"
	ServiceCategoryPackage ServiceCategory = "package"
)

var validServiceCategories = []ServiceCategory{
	ServiceCategoryFacial,
	ServiceCategoryLash,
	ServiceCategoryPeel,
	ServiceCategoryWaxing,
	ServiceCategoryPackage,
}

func (s ServiceCategory) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ServiceCategory.
func (s ServiceCategory) IsValid() bool {
	for _, candidate := range validServiceCategories {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseServiceCategory converts raw input into a ServiceCategory.
func ParseServiceCategory(value string) (ServiceCategory, error) {
	for _, candidate := range validServiceCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service category %q", value)
}
