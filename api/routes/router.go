package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/anasbeautylab/beautylab-backend/api/controllers"
	"github.com/anasbeautylab/beautylab-backend/api/middleware"
	"github.com/anasbeautylab/beautylab-backend/internal/analytics"
	"github.com/anasbeautylab/beautylab-backend/internal/auth"
	"github.com/anasbeautylab/beautylab-backend/internal/bookings"
	"github.com/anasbeautylab/beautylab-backend/internal/catalog"
	gallerysvc "github.com/anasbeautylab/beautylab-backend/internal/gallery"
	"github.com/anasbeautylab/beautylab-backend/internal/settings"
	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/anasbeautylab/beautylab-backend/pkg/db"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/anasbeautylab/beautylab-backend/pkg/logger"
	"github.com/anasbeautylab/beautylab-backend/pkg/storage"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	DBPinger  db.Pinger
	RedisP    db.Pinger
	RateStore middleware.RateLimiterStore
	Store     storage.BlobStore

	Users     middleware.UserResolver
	Auth      auth.Service
	Gallery   gallerysvc.Service
	Images    *gallerysvc.ImagePipeline
	Catalog   catalog.Service
	Bookings  bookings.Service
	Analytics analytics.Service
	Settings  settings.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.RateLimit.LoginWindow,
		cfg.RateLimit.LoginIPLimit,
		cfg.RateLimit.LoginEmailLimit,
	)

	r.Route("/api/health", func(r chi.Router) {
		r.Get("/", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DBPinger, deps.RedisP, deps.Store))
	})

	// Public surface. Everything here shares the general per-IP window.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit, deps.RateStore, logg))

		r.Route("/api/gallery", func(r chi.Router) {
			r.Get("/", controllers.PublicGalleryList(deps.Gallery, logg))
			r.Get("/{itemId}", controllers.PublicGalleryGet(deps.Gallery, logg))
		})
		r.Route("/api/services", func(r chi.Router) {
			r.Get("/", controllers.PublicServiceList(deps.Catalog, logg))
			r.Get("/{slug}", controllers.PublicServiceGet(deps.Catalog, logg))
		})
		r.Post("/api/bookings", controllers.PublicBookingCreate(deps.Bookings, logg))
		r.Post("/api/analytics", controllers.PublicAnalyticsRecord(deps.Analytics, logg))
	})

	r.Route("/api/admin/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.RateStore, logg)).
			Post("/login", controllers.AuthLogin(deps.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Users, logg))
			r.Get("/me", controllers.AuthMe(deps.Auth, logg))
			r.Post("/refresh", controllers.AuthRefresh(deps.Auth, logg))
			r.Post("/logout", controllers.AuthLogout(logg))
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Users, logg))
		r.Use(middleware.RequireRole(logg, enums.UserRoleAdmin.String(), enums.UserRoleEditor.String()))

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", controllers.AdminGalleryList(deps.Gallery, logg))
			r.Post("/", controllers.AdminGalleryCreate(deps.Gallery, deps.Images, cfg.Media, logg))
			r.Put("/reorder", controllers.AdminGalleryReorder(deps.Gallery, logg))
			r.Get("/{itemId}", controllers.AdminGalleryGet(deps.Gallery, logg))
			r.Put("/{itemId}", controllers.AdminGalleryUpdate(deps.Gallery, deps.Images, cfg.Media, logg))
			r.Delete("/{itemId}", controllers.AdminGalleryDelete(deps.Gallery, logg))
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/", controllers.AdminServiceList(deps.Catalog, logg))
			r.Post("/", controllers.AdminServiceCreate(deps.Catalog, logg))
			r.Get("/{serviceId}", controllers.AdminServiceGet(deps.Catalog, logg))
			r.Put("/{serviceId}", controllers.AdminServiceUpdate(deps.Catalog, logg))
			r.Delete("/{serviceId}", controllers.AdminServiceDelete(deps.Catalog, logg))
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", controllers.AdminBookingList(deps.Bookings, logg))
			r.Get("/{bookingId}", controllers.AdminBookingGet(deps.Bookings, logg))
			r.Patch("/{bookingId}/status", controllers.AdminBookingUpdateStatus(deps.Bookings, logg))
			r.Delete("/{bookingId}", controllers.AdminBookingDelete(deps.Bookings, logg))
		})

		r.Get("/analytics", controllers.AdminAnalyticsSummary(deps.Analytics, logg))

		r.Route("/settings", func(r chi.Router) {
			r.Use(middleware.RequireRole(logg, enums.UserRoleAdmin.String()))
			r.Get("/", controllers.AdminSettingsList(deps.Settings, logg))
			r.Get("/{key}", controllers.AdminSettingsGet(deps.Settings, logg))
			r.Put("/{key}", controllers.AdminSettingsPut(deps.Settings, logg))
		})
	})

	// Without a bucket, uploaded blobs live on disk and get served here.
	if !cfg.Storage.UseBucket() {
		if local, ok := deps.Store.(interface{ Dir() string }); ok {
			mountLocalUploads(r, cfg.Storage.LocalBaseURL, local.Dir())
		}
	}

	return r
}

func mountLocalUploads(r chi.Router, baseURL, dir string) {
	prefix := "/" + strings.Trim(baseURL, "/")
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	r.Get(prefix+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}
