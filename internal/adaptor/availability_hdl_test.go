package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-api/internal/availability"
	"booking-api/internal/data/entity"
	"booking-api/internal/dto/response"
	"booking-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAvailabilityService struct {
	resp *response.AvailabilityResponse
	err  error
}

func (s *stubAvailabilityService) GetAvailability(_ context.Context, serviceID, date string) (*response.AvailabilityResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func getAvailability(t *testing.T, svc usecase.AvailabilityService, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewAvailabilityHandler(svc, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.GetAvailability(rec, req)
	return rec
}

func TestGetAvailability_OK(t *testing.T) {
	svc := &stubAvailabilityService{resp: &response.AvailabilityResponse{
		ServiceID:    "svc-1",
		Date:         "2024-06-01",
		Availability: []string{"2024-06-01T09:00:00Z", "2024-06-01T09:15:00Z"},
	}}

	rec := getAvailability(t, svc, "/availability?serviceId=svc-1&date=2024-06-01")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"2024-06-01T09:00:00Z"`)
	assert.Contains(t, rec.Body.String(), `"availability"`)
}

func TestGetAvailability_MissingParams(t *testing.T) {
	svc := &stubAvailabilityService{}

	for _, target := range []string{
		"/availability",
		"/availability?serviceId=svc-1",
		"/availability?date=2024-06-01",
	} {
		rec := getAvailability(t, svc, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestGetAvailability_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown service", fmt.Errorf("service x: %w", entity.ErrServiceNotFound), http.StatusNotFound},
		{"bad service id", usecase.ErrInvalidServiceID, http.StatusBadRequest},
		{"bad date", availability.ErrInvalidDate, http.StatusBadRequest},
		{"corrupt duration", availability.ErrInvalidService, http.StatusBadRequest},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getAvailability(t, &stubAvailabilityService{err: tt.err}, "/availability?serviceId=x&date=2024-06-01")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
