package response

type AvailabilityResponse struct {
	ServiceID    string   `json:"service_id"`
	Date         string   `json:"date"`
	Availability []string `json:"availability"` // RFC 3339 start times, ascending
}
