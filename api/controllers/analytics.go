package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/anasbeautylab/beautylab-backend/api/responses"
	"github.com/anasbeautylab/beautylab-backend/api/validators"
	"github.com/anasbeautylab/beautylab-backend/internal/analytics"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
)

type recordEventRequest struct {
	Type      string          `json:"type" validate:"required"`
	Data      json.RawMessage `json:"data,omitempty"`
	SessionID *string         `json:"session_id,omitempty"`
}

// PublicAnalyticsRecord ingests one tracked event from the site. Session
// provenance comes from the request, not the payload.
func PublicAnalyticsRecord(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body recordEventRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		eventType, err := enums.ParseAnalyticsEventType(body.Type)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid event type").
					WithDetails(map[string]string{"type": "is invalid"}))
			return
		}

		input := analytics.RecordInput{
			Type:      eventType,
			Data:      body.Data,
			SessionID: body.SessionID,
		}
		if ip := requestClientIP(r); ip != "" {
			input.IPAddress = &ip
		}
		if ua := r.UserAgent(); ua != "" {
			input.UserAgent = &ua
		}
		if ref := r.Referer(); ref != "" {
			input.Referrer = &ref
		}

		recorded, err := svc.Record(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, recorded)
	}
}

// AdminAnalyticsSummary reports event counts for an optional time window.
func AdminAnalyticsSummary(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input analytics.SummaryInput

		from, err := validators.ParseQueryTime(r, "from")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if from != nil {
			input.From = *from
		}

		to, err := validators.ParseQueryTime(r, "to")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if to != nil {
			input.To = *to
		}

		summary, err := svc.Summarize(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
