package wire

import (
	"booking-api/internal/adaptor"
	"booking-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	verifier middleware.SessionVerifier,
	log *zap.Logger,
) {
	// Routes below require a verified bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(verifier, log))

		// POST /bookings - create a booking for the caller
		r.Post("/bookings", bookingHandler.CreateBooking)

		// GET /my-bookings - the caller's bookings, newest first
		r.Get("/my-bookings", bookingHandler.GetUserBookings)
	})
}
