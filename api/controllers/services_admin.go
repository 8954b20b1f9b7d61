package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/anasbeautylab/beautylab-backend/api/responses"
	"github.com/anasbeautylab/beautylab-backend/api/validators"
	"github.com/anasbeautylab/beautylab-backend/internal/catalog"
	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
)

type createServiceRequest struct {
	Name              string   `json:"name" validate:"required"`
	Slug              string   `json:"slug,omitempty"`
	Description       string   `json:"description" validate:"required"`
	ShortDescription  *string  `json:"short_description,omitempty"`
	DurationMinutes   int      `json:"duration_minutes" validate:"required,min=15"`
	PriceCents        int64    `json:"price_cents" validate:"min=0"`
	Category          string   `json:"category" validate:"required"`
	Features          []string `json:"features,omitempty"`
	Preparation       []string `json:"preparation,omitempty"`
	Aftercare         []string `json:"aftercare,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
	ImageURL          *string  `json:"image_url,omitempty"`
	ImageKey          *string  `json:"image_key,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
	IsPopular         bool     `json:"is_popular,omitempty"`
	Order             int      `json:"order,omitempty" validate:"min=0"`
}

func (req createServiceRequest) toInput() (catalog.CreateInput, error) {
	category, err := enums.ParseServiceCategory(req.Category)
	if err != nil {
		return catalog.CreateInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category").
			WithDetails(map[string]string{"category": "is invalid"})
	}
	input := catalog.CreateInput{
		Name:              req.Name,
		Slug:              req.Slug,
		Description:       req.Description,
		ShortDescription:  req.ShortDescription,
		DurationMinutes:   req.DurationMinutes,
		PriceCents:        req.PriceCents,
		Category:          category,
		Features:          req.Features,
		Preparation:       req.Preparation,
		Aftercare:         req.Aftercare,
		Contraindications: req.Contraindications,
		IsActive:          req.IsActive,
		IsPopular:         req.IsPopular,
		Order:             req.Order,
	}
	if req.ImageURL != nil {
		image := models.ImageRef{URL: *req.ImageURL}
		if req.ImageKey != nil {
			image.Key = *req.ImageKey
		}
		input.Image = &image
	}
	return input, nil
}

type updateServiceRequest struct {
	Name              *string   `json:"name,omitempty"`
	Slug              *string   `json:"slug,omitempty"`
	Description       *string   `json:"description,omitempty"`
	ShortDescription  *string   `json:"short_description,omitempty"`
	DurationMinutes   *int      `json:"duration_minutes,omitempty" validate:"omitempty,min=15"`
	PriceCents        *int64    `json:"price_cents,omitempty" validate:"omitempty,min=0"`
	Category          *string   `json:"category,omitempty"`
	Features          *[]string `json:"features,omitempty"`
	Preparation       *[]string `json:"preparation,omitempty"`
	Aftercare         *[]string `json:"aftercare,omitempty"`
	Contraindications *[]string `json:"contraindications,omitempty"`
	ImageURL          *string   `json:"image_url,omitempty"`
	ImageKey          *string   `json:"image_key,omitempty"`
	IsActive          *bool     `json:"is_active,omitempty"`
	IsPopular         *bool     `json:"is_popular,omitempty"`
	Order             *int      `json:"order,omitempty" validate:"omitempty,min=0"`
}

func (req updateServiceRequest) toInput() (catalog.UpdateInput, error) {
	input := catalog.UpdateInput{
		Name:              req.Name,
		Slug:              req.Slug,
		Description:       req.Description,
		ShortDescription:  req.ShortDescription,
		DurationMinutes:   req.DurationMinutes,
		PriceCents:        req.PriceCents,
		Features:          req.Features,
		Preparation:       req.Preparation,
		Aftercare:         req.Aftercare,
		Contraindications: req.Contraindications,
		IsActive:          req.IsActive,
		IsPopular:         req.IsPopular,
		Order:             req.Order,
	}
	if req.Category != nil {
		category, err := enums.ParseServiceCategory(*req.Category)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category").
				WithDetails(map[string]string{"category": "is invalid"})
		}
		input.Category = &category
	}
	if req.ImageURL != nil {
		image := models.ImageRef{URL: *req.ImageURL}
		if req.ImageKey != nil {
			image.Key = *req.ImageKey
		}
		input.Image = &image
	}
	return input, nil
}

func AdminServiceCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createServiceRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminServiceList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := serviceListInput(r, nil)
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

func AdminServiceGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "serviceId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		service, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, service)
	}
}

func AdminServiceUpdate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "serviceId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateServiceRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func AdminServiceDelete(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "serviceId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "service deleted"})
	}
}

func serviceListInput(r *http.Request, forceActive *bool) (catalog.ListInput, error) {
	var input catalog.ListInput

	params, err := validators.ParsePagination(r)
	if err != nil {
		return input, err
	}
	input.Pagination = params

	if raw := validators.ParseQueryString(r, "category"); raw != nil {
		category, err := enums.ParseServiceCategory(*raw)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category filter")
		}
		input.Filters.Category = &category
	}

	if forceActive != nil {
		input.Filters.IsActive = forceActive
	} else {
		status, err := validators.ParseQueryBoolStatus(r, "status")
		if err != nil {
			return input, err
		}
		input.Filters.IsActive = status
	}

	if raw := validators.ParseQueryString(r, "popular"); raw != nil {
		popular, err := strconv.ParseBool(*raw)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid popular filter")
		}
		input.Filters.IsPopular = &popular
	}

	return input, nil
}
