package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationsDirIsValid(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir invalid: %v", err)
	}
}

func TestGalleryMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_gallery_items.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no gallery migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS gallery_items",
		"CHECK (category IN ('acne', 'anti-aging', 'glow', 'lash', 'studio', 'instagram'))",
		"CHECK (type IN ('before-after', 'studio', 'instagram'))",
		"idx_gallery_category_order",
		"DROP TABLE IF EXISTS gallery_items",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestBookingsMigrationReferencesServices(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_bookings.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no bookings migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"FOREIGN KEY (service_id) REFERENCES services(id) ON DELETE RESTRICT",
		"CHECK (status IN ('pending', 'confirmed', 'completed', 'cancelled', 'no-show'))",
		"idx_bookings_date_status",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
