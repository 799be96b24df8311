package adaptor

import (
	"booking-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Service      *ServiceHandler
	Booking      *BookingHandler
	Availability *AvailabilityHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Service:      NewServiceHandler(service.Catalog, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
	}
}
