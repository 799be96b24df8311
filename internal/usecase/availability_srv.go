package usecase

import (
	"context"
	"fmt"
	"time"

	"booking-api/internal/availability"
	"booking-api/internal/data/entity"
	"booking-api/internal/data/repository"
	"booking-api/internal/dto/response"
	"booking-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	GetAvailability(ctx context.Context, serviceID, date string) (*response.AvailabilityResponse, error)
}

type availabilityService struct {
	repo     *repository.Repository
	window   availability.Config
	location *time.Location
	log      *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		window: availability.Config{
			WindowStartHour: config.Availability.WindowStartHour,
			WindowEndHour:   config.Availability.WindowEndHour,
			StepMinutes:     config.Availability.StepMinutes,
		},
		location: config.App.Location,
		log:      log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) GetAvailability(ctx context.Context, serviceID, date string) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidServiceID, serviceID)
	}

	day, err := availability.ParseDate(date, s.location)
	if err != nil {
		return nil, err
	}

	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load service for availability", zap.Error(err))
		return nil, fmt.Errorf("load service: %w", err)
	}
	if service == nil {
		return nil, fmt.Errorf("service %s: %w", serviceID, entity.ErrServiceNotFound)
	}

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)

	bookings, err := s.repo.Booking.FindByServiceBetween(ctx, id, dayStart, dayEnd)
	if err != nil {
		s.log.Error("Failed to load bookings for availability",
			zap.Error(err),
			zap.String("service_id", serviceID),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	booked := make([]availability.Interval, len(bookings))
	for i, b := range bookings {
		booked[i] = availability.Interval{Start: b.StartTime, End: b.EndTime}
	}

	slots, err := availability.Slots(service.DurationMinutes, day, booked, s.window)
	if err != nil {
		return nil, err
	}

	formatted := make([]string, len(slots))
	for i, slot := range slots {
		formatted[i] = slot.Format(time.RFC3339)
	}

	s.log.Info("Availability computed",
		zap.String("service_id", serviceID),
		zap.String("date", date),
		zap.Int("booked", len(booked)),
		zap.Int("slots", len(formatted)),
	)

	return &response.AvailabilityResponse{
		ServiceID:    serviceID,
		Date:         date,
		Availability: formatted,
	}, nil
}
