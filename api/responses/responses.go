package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"reflect"
	"sort"

	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
	"github.com/anasbeautylab/beautylab-backend/pkg/pagination"
	"github.com/anasbeautylab/beautylab-backend/pkg/types"
)

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, types.SuccessEnvelope{Success: true, Data: data})
}

// WriteList wraps a paginated collection with its count metadata. Count is
// the number of items in this page; the full result size shows up through
// totalPages.
func WriteList(w http.ResponseWriter, meta pagination.Meta, data any) {
	count := meta.TotalCount
	if v := reflect.ValueOf(data); v.Kind() == reflect.Slice {
		count = int64(v.Len())
	}
	WriteJSON(w, http.StatusOK, types.ListEnvelope{
		Success:     true,
		Count:       count,
		TotalPages:  meta.TotalPages,
		CurrentPage: meta.CurrentPage,
		Data:        data,
	})
}

func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeForbidden,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict,
		pkgerrors.CodeUnsupportedMedia,
		pkgerrors.CodeRateLimit:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := types.ErrorEnvelope{
		Success: false,
		Code:    string(typed.Code()),
		Error:   msg,
	}

	if meta.DetailsAllowed {
		payload.Errors = fieldErrors(typed.Details())
	}

	if logg != nil {
		fields := map[string]any{
			"error":      err.Error(),
			"error_code": string(typed.Code()),
		}
		ctx = logg.WithFields(ctx, fields)
		logg.Error(ctx, "request.error", err)
	}

	WriteJSON(w, meta.HTTPStatus, payload)
}

// fieldErrors flattens validator details into the errors array. Keys are
// sorted so the output is stable.
func fieldErrors(details any) []types.FieldError {
	byField, ok := details.(map[string]string)
	if !ok || len(byField) == 0 {
		return nil
	}
	fields := make([]string, 0, len(byField))
	for field := range byField {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]types.FieldError, 0, len(fields))
	for _, field := range fields {
		out = append(out, types.FieldError{Field: field, Message: byField[field]})
	}
	return out
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
