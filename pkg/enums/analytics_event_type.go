package enums

import "fmt"

// AnalyticsEventType enumerates the site events we record.
type AnalyticsEventType string

const (
	AnalyticsEventPageview    AnalyticsEventType = "pageview"
	AnalyticsEventBooking     AnalyticsEventType = "booking"
	AnalyticsEventContact     AnalyticsEventType = "contact"
	AnalyticsEventGalleryView AnalyticsEventType = "gallery_view"
	AnalyticsEventServiceView AnalyticsEventType = "service_view"
)

var validAnalyticsEventTypes = []AnalyticsEventType{
	AnalyticsEventPageview,
	AnalyticsEventBooking,
	AnalyticsEventContact,
	AnalyticsEventGalleryView,
	AnalyticsEventServiceView,
}

func (a AnalyticsEventType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AnalyticsEventType.
func (a AnalyticsEventType) IsValid() bool {
	for _, candidate := range validAnalyticsEventTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAnalyticsEventType converts raw input into an AnalyticsEventType.
func ParseAnalyticsEventType(value string) (AnalyticsEventType, error) {
	for _, candidate := range validAnalyticsEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid analytics event type %q", value)
}
