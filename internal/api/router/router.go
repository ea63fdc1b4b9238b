package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hijamacare/site-engine/internal/http/handlers"
	httpmiddleware "github.com/hijamacare/site-engine/internal/http/middleware"
	"github.com/hijamacare/site-engine/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	PagesHandler       *handlers.PagesHandler
	BookingHandler     *handlers.BookingHandler
	ContactHandler     *handlers.ContactHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.PagesHandler != nil {
		r.Route("/pages", func(r chi.Router) {
			r.Get("/", cfg.PagesHandler.ListPages)
			r.Get("/{slug}", cfg.PagesHandler.GetPage)
		})
	}

	if cfg.BookingHandler != nil {
		r.Route("/booking", func(r chi.Router) {
			r.Post("/submit", cfg.BookingHandler.Submit)
			r.Get("/date-info", cfg.BookingHandler.DateInfo)
			r.Get("/sunnah-days", cfg.BookingHandler.SunnahDays)
			r.Get("/form", cfg.BookingHandler.FormConfig)
		})
	}

	if cfg.ContactHandler != nil {
		r.Post("/contact/submit", cfg.ContactHandler.Submit)
	}

	return r
}
