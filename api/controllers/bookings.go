package controllers

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anasbeautylab/beautylab-backend/api/responses"
	"github.com/anasbeautylab/beautylab-backend/api/validators"
	"github.com/anasbeautylab/beautylab-backend/internal/bookings"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
)

type createBookingRequest struct {
	ClientName  string  `json:"client_name" validate:"required,min=2,max=120"`
	ClientEmail string  `json:"client_email" validate:"required,email"`
	ClientPhone string  `json:"client_phone" validate:"required,min=5,max=40"`
	ServiceID   string  `json:"service_id" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Time        string  `json:"time" validate:"required"`
	Notes       *string `json:"notes,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// PublicBookingCreate accepts an appointment request from the site. Client
// provenance comes from the request itself, never from the payload.
func PublicBookingCreate(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createBookingRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if ip := requestClientIP(r); ip != "" {
			input.IPAddress = &ip
		}
		if ua := r.UserAgent(); ua != "" {
			input.UserAgent = &ua
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func (req createBookingRequest) toInput() (bookings.CreateInput, error) {
	var input bookings.CreateInput

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid service id").
			WithDetails(map[string]string{"service_id": "must be a valid UUID"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid booking date").
			WithDetails(map[string]string{"date": "must be formatted as YYYY-MM-DD"})
	}

	if _, err := time.Parse("15:04", req.Time); err != nil {
		return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid booking time").
			WithDetails(map[string]string{"time": "must be formatted as HH:MM"})
	}

	source := enums.BookingSourceWebsite
	if req.Source != "" {
		parsed, err := enums.ParseBookingSource(req.Source)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid booking source")
		}
		source = parsed
	}

	input = bookings.CreateInput{
		ClientName:  validators.SanitizeString(req.ClientName, 120),
		ClientEmail: strings.ToLower(strings.TrimSpace(req.ClientEmail)),
		ClientPhone: validators.SanitizeString(req.ClientPhone, 40),
		ServiceID:   serviceID,
		Date:        date,
		Time:        req.Time,
		Notes:       req.Notes,
		Source:      source,
	}
	if input.Notes != nil {
		trimmed := validators.SanitizeString(*input.Notes, 1000)
		input.Notes = &trimmed
	}
	return input, nil
}

func AdminBookingList(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := bookingListInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, result.Meta, result.Items)
	}
}

func AdminBookingGet(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "bookingId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, booking)
	}
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func AdminBookingUpdateStatus(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "bookingId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateBookingStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseBookingStatus(body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid booking status").
					WithDetails(map[string]string{"status": "is invalid"}))
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func AdminBookingDelete(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "bookingId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "booking deleted"})
	}
}

func bookingListInput(r *http.Request) (bookings.ListInput, error) {
	var input bookings.ListInput

	params, err := validators.ParsePagination(r)
	if err != nil {
		return input, err
	}
	input.Pagination = params

	if raw := validators.ParseQueryString(r, "status"); raw != nil {
		status, err := enums.ParseBookingStatus(*raw)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
		input.Filters.Status = &status
	}

	if raw := validators.ParseQueryString(r, "serviceId"); raw != nil {
		serviceID, err := uuid.Parse(*raw)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid serviceId filter")
		}
		input.Filters.ServiceID = &serviceID
	}

	dateFrom, err := validators.ParseQueryTime(r, "dateFrom")
	if err != nil {
		return input, err
	}
	input.Filters.DateFrom = dateFrom

	dateTo, err := validators.ParseQueryTime(r, "dateTo")
	if err != nil {
		return input, err
	}
	input.Filters.DateTo = dateTo

	if input.Filters.DateFrom != nil && input.Filters.DateTo != nil &&
		input.Filters.DateTo.Before(*input.Filters.DateFrom) {
		return input, pkgerrors.New(pkgerrors.CodeValidation, "dateTo precedes dateFrom")
	}

	return input, nil
}

// requestClientIP extracts the caller's address, trusting proxy headers
// first so deployments behind a load balancer record the real client.
func requestClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if real := strings.TrimSpace(r.Header.Get("X-Real-IP")); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
