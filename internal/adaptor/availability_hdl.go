package adaptor

import (
	"errors"
	"net/http"

	"booking-api/internal/availability"
	"booking-api/internal/data/entity"
	"booking-api/internal/usecase"
	"booking-api/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetAvailability handles GET /availability?serviceId=&date= (public)
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	serviceID := query.Get("serviceId")
	date := query.Get("date")

	if serviceID == "" || date == "" {
		utils.ResponseBadRequest(w, "Missing serviceId or date", nil)
		return
	}

	slots, err := h.service.GetAvailability(r.Context(), serviceID, date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

func (h *AvailabilityHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrServiceNotFound):
		h.log.Warn("Availability lookup - service not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, availability.ErrInvalidDate),
		errors.Is(err, availability.ErrInvalidService):
		h.log.Warn("Availability lookup - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to compute availability", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
