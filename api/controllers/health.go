package controllers

import (
	"net/http"
	"time"

	"github.com/anasbeautylab/beautylab-backend/api/responses"
	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/anasbeautylab/beautylab-backend/pkg/db"
	pkgerrors "github.com/anasbeautylab/beautylab-backend/pkg/errors"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
	"github.com/anasbeautylab/beautylab-backend/pkg/storage"
)

// HealthLive reports process liveness without touching dependencies.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"status":    "live",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// HealthReady pings the datasource, blob store, and (when configured)
// Redis. Any failed dependency turns the response into a 502.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP db.Pinger, store storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{}
		healthy := true

		if dbP != nil {
			checks["database"] = pingStatus(dbP.Ping(r.Context()), &healthy)
		}
		if store != nil {
			checks["storage"] = pingStatus(store.Ping(r.Context()), &healthy)
		}
		if redisP != nil {
			checks["redis"] = pingStatus(redisP.Ping(r.Context()), &healthy)
		} else {
			checks["redis"] = "disabled"
		}

		if !healthy {
			err := pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"status": "ready",
			"checks": checks,
		})
	}
}

func pingStatus(err error, healthy *bool) string {
	if err != nil {
		*healthy = false
		return "down"
	}
	return "ok"
}
