package usecase

import (
	"context"
	"sort"
	"time"

	"booking-api/internal/availability"
	"booking-api/internal/data/entity"
	"booking-api/internal/data/repository"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubServiceRepo struct {
	byID      map[uuid.UUID]*entity.Service
	createErr error
	findErr   error
}

func newStubServiceRepo(services ...*entity.Service) *stubServiceRepo {
	r := &stubServiceRepo{byID: make(map[uuid.UUID]*entity.Service)}
	for _, s := range services {
		r.byID[s.ID] = s
	}
	return r
}

func (r *stubServiceRepo) Create(_ context.Context, service *entity.Service) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *service
	r.byID[service.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	service, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *service
	return &clone, nil
}

func (r *stubServiceRepo) FindAll(_ context.Context) ([]*entity.Service, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var services []*entity.Service
	for _, s := range r.byID {
		clone := *s
		services = append(services, &clone)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
	return services, nil
}

type stubBookingRepo struct {
	bookings  []*entity.Booking
	createErr error
}

// CreateIfFree mirrors the real repo: reject when any confirmed booking for
// the same service overlaps under half-open semantics.
func (r *stubBookingRepo) CreateIfFree(_ context.Context, booking *entity.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, b := range r.bookings {
		if b.ServiceID != booking.ServiceID || b.Status != entity.BookingStatusConfirmed {
			continue
		}
		if availability.Overlaps(booking.StartTime, booking.EndTime, b.StartTime, b.EndTime) {
			return entity.ErrBookingConflict
		}
	}
	clone := *booking
	r.bookings = append(r.bookings, &clone)
	return nil
}

func (r *stubBookingRepo) FindByServiceBetween(_ context.Context, serviceID uuid.UUID, from, to time.Time) ([]*entity.Booking, error) {
	var matched []*entity.Booking
	for _, b := range r.bookings {
		if b.ServiceID != serviceID || b.Status != entity.BookingStatusConfirmed {
			continue
		}
		if availability.Overlaps(b.StartTime, b.EndTime, from, to) {
			clone := *b
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartTime.Before(matched[j].StartTime) })
	return matched, nil
}

func (r *stubBookingRepo) FindByUserID(_ context.Context, userID string, limit, offset int) ([]*entity.Booking, error) {
	var matched []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			clone := *b
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartTime.After(matched[j].StartTime) })
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *stubBookingRepo) CountByUserID(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func newStubRepository(serviceRepo repository.ServiceRepository, bookingRepo repository.BookingRepository) *repository.Repository {
	return &repository.Repository{
		Service: serviceRepo,
		Booking: bookingRepo,
	}
}
