package wire

import (
	"booking-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireService(r chi.Router, serviceHandler *adaptor.ServiceHandler) {
	// GET /services - list the catalog (public)
	r.Get("/services", serviceHandler.ListServices)

	// POST /services - add a service to the catalog (public)
	r.Post("/services", serviceHandler.CreateService)
}
