package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anasbeautylab/beautylab-backend/api/responses"
	"github.com/anasbeautylab/beautylab-backend/api/validators"
	gallerysvc "github.com/anasbeautylab/beautylab-backend/internal/gallery"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
)

// PublicGalleryList serves the site gallery. Only active items are visible;
// the status knob is not exposed here.
func PublicGalleryList(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := true
		input, err := galleryListInput(r, &active)
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

// PublicGalleryGet serves one item and bumps its view counter. Inactive
// items stay hidden from the public surface.
func PublicGalleryGet(svc gallerysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathUUID(chi.URLParam(r, "itemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Get(r.Context(), id, true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !item.IsActive {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "gallery item not found"))
			return
		}
		responses.WriteSuccess(w, item)
	}
}
