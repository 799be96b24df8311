package response

import (
	"time"

	"booking-api/internal/data/entity"
)

type ServiceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Duration  int       `json:"duration"` // minutes
	CreatedAt time.Time `json:"created_at"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:        service.ID.String(),
		Name:      service.Name,
		Price:     service.Price,
		Duration:  service.DurationMinutes,
		CreatedAt: service.CreatedAt,
	}
}
