package validators

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
	"github.com/google/uuid"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]string{key: "must be numeric"})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]string{key: "is out of range"})
	}
	return value, nil
}

// ParsePagination reads page and limit query parameters; both are clamped
// downstream, so only non-numeric input fails here.
func ParsePagination(r *http.Request) (pagination.Params, error) {
	page, err := ParseQueryInt(r, "page", 1, 1, 1<<30)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, Limit: limit}, nil
}

// ParseQueryBoolStatus reads a tri-state status parameter: "all" (or absent)
// means no filter, "active"/"inactive" select one side.
func ParseQueryBoolStatus(r *http.Request, key string) (*bool, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	switch raw {
	case "", "all":
		return nil, nil
	case "active", "true":
		value := true
		return &value, nil
	case "inactive", "false":
		value := false
		return &value, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "status must be all, active, or inactive").WithDetails(map[string]string{key: "is invalid"})
}

// ParseQueryString returns the trimmed parameter or nil when absent.
func ParseQueryString(r *http.Request, key string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}

// ParseQueryTime parses an RFC 3339 timestamp or a bare date.
func ParseQueryTime(r *http.Request, key string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &ts, nil
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return &ts, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeValidation, "timestamp must be RFC 3339 or YYYY-MM-DD").WithDetails(map[string]string{key: "is invalid"})
}

// ParsePathUUID reads a UUID path segment already extracted by the router.
func ParsePathUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "identifier must be a valid uuid").WithDetails(map[string]string{"id": "must be a valid uuid"})
	}
	return id, nil
}
