// internal/wire/wire.go
package wire

import (
	"net/http"

	"booking-api/internal/adaptor"
	"booking-api/internal/usecase"
	"booking-api/pkg/middleware"
	"booking-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(service *usecase.Service, verifier middleware.SessionVerifier, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, verifier, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	verifier middleware.SessionVerifier,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(allowedOrigins(config)))

	// Feature routes
	wireService(r, handler.Service)
	wireAvailability(r, handler.Availability)
	wireBooking(r, handler.Booking, verifier, logger)

	// Liveness endpoints
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Booking API is running"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

func allowedOrigins(config *utils.Config) []string {
	origins := []string{"http://localhost:3000"}
	if config.App.FrontendURL != "" {
		origins = append(origins, config.App.FrontendURL)
	}
	return origins
}
