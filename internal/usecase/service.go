package usecase

import (
	"errors"

	"booking-api/internal/data/repository"
	"booking-api/pkg/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidServiceID = errors.New("invalid service ID")
	ErrInvalidStartTime = errors.New("invalid start time, expected RFC 3339 timestamp")
)

type Service struct {
	Catalog      CatalogService
	Booking      BookingService
	Availability AvailabilityService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Catalog:      NewCatalogService(repo.Service, log),
		Booking:      NewBookingService(repo, log),
		Availability: NewAvailabilityService(repo, config, log),
	}
}
