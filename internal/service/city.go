package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/velmir0/TourBooker/internal/domain"
	"github.com/velmir0/TourBooker/internal/service/ports"
)

type CityService struct {
	repo ports.CityRepo
}

func NewCityService(repo ports.CityRepo) *CityService {
	return &CityService{repo: repo}
}

func (s *CityService) Create(ctx context.Context, input domain.CreateCityInput) (*domain.City, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Country == "" {
		return nil, fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	if input.Image == "" {
		return nil, fmt.Errorf("%w: image is required", domain.ErrValidation)
	}

	city := &domain.City{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Country:     input.Country,
		Image:       input.Image,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, city); err != nil {
		return nil, fmt.Errorf("create city: %w", err)
	}

	return city, nil
}

func (s *CityService) GetByID(ctx context.Context, id string) (*domain.City, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CityService) List(ctx context.Context) ([]*domain.City, error) {
	return s.repo.List(ctx)
}
