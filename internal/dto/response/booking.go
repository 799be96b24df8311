package response

import (
	"time"

	"booking-api/internal/data/entity"
)

type BookingResponse struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	ServiceID string               `json:"service_id"`
	StartTime time.Time            `json:"start_time"`
	EndTime   time.Time            `json:"end_time"`
	Status    entity.BookingStatus `json:"status"`
	Service   *ServiceResponse     `json:"service,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        booking.ID.String(),
		UserID:    booking.UserID,
		ServiceID: booking.ServiceID.String(),
		StartTime: booking.StartTime,
		EndTime:   booking.EndTime,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
	}

	if booking.Service != nil {
		service := ServiceToResponse(booking.Service)
		resp.Service = &service
	}

	return resp
}
