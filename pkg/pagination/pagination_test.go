package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default limit, got %d", got)
	}
	if got := NormalizeLimit(-5); got != DefaultLimit {
		t.Fatalf("expected default limit for negative input, got %d", got)
	}
	if got := NormalizeLimit(500); got != MaxLimit {
		t.Fatalf("expected max limit cap, got %d", got)
	}
	if got := NormalizeLimit(30); got != 30 {
		t.Fatalf("expected limit passthrough, got %d", got)
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 20}).Offset(); got != 0 {
		t.Fatalf("expected offset 0 for first page, got %d", got)
	}
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if got := (Params{Page: 0, Limit: 10}).Offset(); got != 0 {
		t.Fatalf("page 0 should clamp to first page, got offset %d", got)
	}
}

func TestMetaFor(t *testing.T) {
	meta := MetaFor(Params{Page: 2, Limit: 10}, 25)
	if meta.TotalCount != 25 {
		t.Fatalf("unexpected total %d", meta.TotalCount)
	}
	if meta.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", meta.TotalPages)
	}
	if meta.CurrentPage != 2 {
		t.Fatalf("expected current page 2, got %d", meta.CurrentPage)
	}

	meta = MetaFor(Params{Page: 1, Limit: 10}, 0)
	if meta.TotalPages != 0 {
		t.Fatalf("expected 0 pages for empty set, got %d", meta.TotalPages)
	}
}
