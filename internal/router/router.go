package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"droughtwatch/internal/config"
	"droughtwatch/internal/handler"
	"droughtwatch/internal/middleware"
	"droughtwatch/internal/model"
	"droughtwatch/internal/web"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Farm       *handler.FarmHandler
	Prediction *handler.PredictionHandler
	Plan       *handler.RecoveryPlanHandler
	Alert      *handler.AlertHandler
	Satellite  *handler.SatelliteHandler
	Dashboard  *handler.DashboardHandler
	Health     *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/", web.Landing)
	r.Get("/health", h.Health.Check)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", h.Auth.Register)
			auth.Post("/login", h.Auth.Login)
			auth.With(authMiddleware.RequireAuth).Get("/me", h.Auth.Me)
		})

		api.Group(func(protected chi.Router) {
			protected.Use(authMiddleware.RequireAuth)

			protected.Get("/farms", h.Farm.List)
			protected.Post("/farms", h.Farm.Create)
			protected.Get("/farms/{farm_id}", h.Farm.Get)

			protected.Get("/predictions", h.Prediction.List)
			protected.Get("/predictions/latest", h.Prediction.Latest)
			protected.Post("/predictions", h.Prediction.Create)

			protected.Get("/plans", h.Plan.List)
			protected.Post("/plans", h.Plan.Create)

			protected.Get("/alerts", h.Alert.List)
			protected.Post("/alerts", h.Alert.Create)
			protected.Patch("/alerts/{alert_id}/read", h.Alert.MarkRead)

			protected.Get("/satellite", h.Satellite.List)
			protected.With(authMiddleware.RequireRoles(model.RoleAdmin, model.RoleResearcher)).
				Post("/satellite", h.Satellite.Ingest)

			protected.Get("/dashboard", h.Dashboard.Stats)
		})
	})

	return r
}
