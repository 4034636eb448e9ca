package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"carelink-go/internal/config"
	"carelink-go/internal/metrics"
	"carelink-go/internal/transport/httpserver/handler"
	authmw "carelink-go/internal/transport/httpserver/middleware"
)

// NewRouter mounts every route. m may be nil, which disables /metrics and
// request instrumentation.
func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *authmw.SupabaseAuth, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout(cfg)))
	r.Use(authmw.NewCORS(authmw.CORSOptions{AllowedOrigins: cfg.AllowedOrigins, MaxAge: cfg.CORSMaxAge}))
	if m != nil {
		r.Use(m.Middleware)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.Common.AuthMe)
			r.Get("/profiles/me", handlers.Common.GetProfileMe)
			r.Patch("/profiles/me", handlers.Common.UpdateProfileMe)

			r.Post("/connections", handlers.Connections.CreateConnection)
			r.Get("/connections/requests", handlers.Connections.ListRequests)
			r.Get("/connections/seniors", handlers.Connections.ListSeniors)
			r.Get("/connections/family", handlers.Connections.ListFamily)
			r.Get("/connections/recipients", handlers.Connections.ListNotificationRecipients)
			r.Get("/connections/{id}", handlers.Connections.GetConnection)
			r.Patch("/connections/{id}/status", handlers.Connections.UpdateStatus)
			r.Patch("/connections/{id}/permissions", handlers.Connections.UpdatePermissions)
			r.Delete("/connections/{id}", handlers.Connections.DeleteConnection)

			r.Get("/health-metrics", handlers.Wellbeing.ListMetrics)
			r.Post("/health-metrics", handlers.Wellbeing.CreateMetric)
			r.Patch("/health-metrics/{id}", handlers.Wellbeing.UpdateMetric)
			r.Delete("/health-metrics/{id}", handlers.Wellbeing.DeleteMetric)

			r.Get("/appointments", handlers.Care.ListAppointments)
			r.Post("/appointments", handlers.Care.CreateAppointment)
			r.Get("/appointments/{id}", handlers.Care.GetAppointment)
			r.Patch("/appointments/{id}", handlers.Care.UpdateAppointment)
			r.Delete("/appointments/{id}", handlers.Care.DeleteAppointment)

			r.Get("/medications", handlers.Care.ListMedications)
			r.Post("/medications", handlers.Care.CreateMedication)
			r.Patch("/medications/{id}", handlers.Care.UpdateMedication)
			r.Delete("/medications/{id}", handlers.Care.DeleteMedication)

			r.Post("/locations", handlers.Wellbeing.RecordLocation)
			r.Get("/locations", handlers.Wellbeing.LocationHistory)
			r.Get("/locations/latest", handlers.Wellbeing.LatestLocation)
			r.Get("/locations/history", handlers.Wellbeing.LocationHistory)

			r.Get("/activities", handlers.Wellbeing.ListActivities)
			r.Post("/activities", handlers.Wellbeing.RecordActivity)

			r.Route("/seniors/{senior_id}", func(r chi.Router) {
				r.Get("/permissions", handlers.Seniors.Permissions)
				r.Get("/profile", handlers.Seniors.Profile)
				r.Get("/health-metrics", handlers.Seniors.HealthMetrics)
				r.Get("/medications", handlers.Seniors.Medications)
				r.Post("/medications", handlers.Seniors.CreateMedication)
				r.Get("/appointments", handlers.Seniors.Appointments)
				r.Post("/appointments", handlers.Seniors.CreateAppointment)
				r.Get("/location", handlers.Seniors.LatestLocation)
				r.Get("/location/history", handlers.Seniors.LocationHistory)
				r.Get("/activities", handlers.Seniors.Activities)
			})
		})
	})

	return r
}

func requestTimeout(cfg config.Config) time.Duration {
	if cfg.RequestTimeout <= 0 {
		return 30 * time.Second
	}
	return cfg.RequestTimeout
}
