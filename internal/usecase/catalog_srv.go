package usecase

import (
	"context"
	"fmt"
	"time"

	"booking-api/internal/data/entity"
	"booking-api/internal/data/repository"
	"booking-api/internal/dto/request"
	"booking-api/internal/dto/response"
	"booking-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]response.ServiceResponse, error)
	CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
}

type catalogService struct {
	repo repository.ServiceRepository
	log  *zap.Logger
}

func NewCatalogService(repo repository.ServiceRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]response.ServiceResponse, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}

	responses := make([]response.ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = response.ServiceToResponse(service)
	}

	return responses, nil
}

func (s *catalogService) CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.Duration,
	}

	if err := s.repo.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("name", service.Name),
		zap.Int("duration_minutes", service.DurationMinutes),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}
