package enums

import "fmt"

// BookingSource records the channel a booking request arrived through.
type BookingSource string

const (
	BookingSourceWebsite   BookingSource = "website"
	BookingSourceInstagram BookingSource = "instagram"
	BookingSourceReferral  BookingSource = "referral"
	BookingSourceGoogle    BookingSource = "google"
	BookingSourceOther     BookingSource = "other"
)

var validBookingSources = []BookingSource{
	BookingSourceWebsite,
	BookingSourceInstagram,
	BookingSourceReferral,
	BookingSourceGoogle,
	BookingSourceOther,
}

func (b BookingSource) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BookingSource.
func (b BookingSource) IsValid() bool {
	for _, candidate := range validBookingSources {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBookingSource converts raw input into a BookingSource.
func ParseBookingSource(value string) (BookingSource, error) {
	for _, candidate := range validBookingSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid booking source %q", value)
}
