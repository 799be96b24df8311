package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booking-api/internal/data/entity"
	"booking-api/internal/dto/request"
	"booking-api/internal/dto/response"
	"booking-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	booking *response.BookingResponse
	page    *response.PaginatedResponse[response.BookingResponse]
	err     error
}

func (s *stubBookingService) CreateBooking(_ context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

func (s *stubBookingService) GetUserBookings(_ context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

func postBooking(t *testing.T, svc *stubBookingService, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewBookingHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	if authenticated {
		req = req.WithContext(utils.SetUserContext(req.Context(), "user-42", "a@b.test"))
	}
	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)
	return rec
}

func TestCreateBookingHandler_Created(t *testing.T) {
	serviceID := uuid.NewString()
	svc := &stubBookingService{booking: &response.BookingResponse{
		ID:        uuid.NewString(),
		UserID:    "user-42",
		ServiceID: serviceID,
		Status:    entity.BookingStatusConfirmed,
	}}

	body := fmt.Sprintf(`{"serviceId":%q,"startTime":"2024-06-01T10:00:00Z"}`, serviceID)
	rec := postBooking(t, svc, body, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"confirmed"`)
}

func TestCreateBookingHandler_Unauthenticated(t *testing.T) {
	rec := postBooking(t, &stubBookingService{}, `{}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingHandler_BadRequests(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		rec := postBooking(t, &stubBookingService{}, `{not json`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := postBooking(t, &stubBookingService{}, `{}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateBookingHandler_ErrorMapping(t *testing.T) {
	serviceID := uuid.NewString()
	body := fmt.Sprintf(`{"serviceId":%q,"startTime":"2024-06-01T10:00:00Z"}`, serviceID)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown service", fmt.Errorf("service x: %w", entity.ErrServiceNotFound), http.StatusNotFound},
		{"slot conflict", entity.ErrBookingConflict, http.StatusConflict},
		{"store failure", fmt.Errorf("create booking: connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postBooking(t, &stubBookingService{err: tt.err}, body, true)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestGetUserBookingsHandler(t *testing.T) {
	svc := &stubBookingService{page: response.NewPaginatedResponse(
		[]response.BookingResponse{{ID: uuid.NewString(), UserID: "user-42"}}, 1, 20, 1)}
	handler := NewBookingHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/my-bookings", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), "user-42", "a@b.test"))
	rec := httptest.NewRecorder()
	handler.GetUserBookings(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pagination"`)

	// No identity in context means 401 before the service is touched.
	rec = httptest.NewRecorder()
	handler.GetUserBookings(rec, httptest.NewRequest(http.MethodGet, "/my-bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
