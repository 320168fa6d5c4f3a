package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"mingle-backend/internal/handlers"
)

// Handlers groups everything SetupRoutes mounts
type Handlers struct {
	Health   *handlers.HealthHandler
	Profile  *handlers.ProfileHandler
	Network  *handlers.NetworkHandler
	QR       *handlers.QRHandler
	Outreach *handlers.OutreachHandler
	Metrics  http.Handler // optional
}

// SetupRoutes configures all application routes
func SetupRoutes(mux *http.ServeMux, h Handlers) {
	// Health check routes
	mux.HandleFunc("GET /healthz", h.Health.HealthCheck)
	mux.HandleFunc("GET /livez", h.Health.LivenessCheck)
	mux.HandleFunc("GET /readyz", h.Health.ReadinessCheck)

	// Profiles
	mux.HandleFunc("POST /api/profiles", h.Profile.Create)
	mux.HandleFunc("GET /api/profiles", h.Profile.List)
	mux.HandleFunc("GET /api/profiles/{id}", h.Profile.Get)
	mux.HandleFunc("PUT /api/profiles/{id}", h.Profile.Update)

	// Saved contacts
	mux.HandleFunc("GET /api/network", h.Network.List)
	mux.HandleFunc("POST /api/network", h.Network.Save)
	mux.HandleFunc("DELETE /api/network/{profileId}", h.Network.Remove)

	mux.HandleFunc("GET /api/qr/{profileId}", h.QR.Get)

	// AI service proxy
	mux.HandleFunc("POST /api/outreach/rank", h.Outreach.Rank)
	mux.HandleFunc("POST /api/outreach/draft", h.Outreach.Draft)

	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Mingle backend is running."))
}
