package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anasbeautylab/beautylab-backend/api/responses"
	"github.com/anasbeautylab/beautylab-backend/internal/catalog"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
)

// PublicServiceList serves the bookable offerings shown on the site; only
// active services are visible.
func PublicServiceList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := true
		input, err := serviceListInput(r, &active)
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

// PublicServiceGet resolves a service by its URL slug.
func PublicServiceGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, service)
	}
}
