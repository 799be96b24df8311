package request

type CreateBookingRequest struct {
	ServiceID string `json:"serviceId" validate:"required,uuid4"`
	StartTime string `json:"startTime" validate:"required"` // RFC 3339
}
