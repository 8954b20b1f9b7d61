package middleware

import (
	"net/http"
	"strings"

	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/go-chi/cors"
)

// CORS returns middleware that applies the configured allowed-origin policy.
// The local dev origin is always permitted.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := []string{"http://localhost:3000"}
	if origin := strings.TrimSpace(cfg.AllowedOrigin); origin != "" && origin != origins[0] {
		origins = append(origins, origin)
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
