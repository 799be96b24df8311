package wire

import (
	"booking-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	// GET /availability?serviceId=&date= - free slots for a service on a day (public)
	r.Get("/availability", availabilityHandler.GetAvailability)
}
