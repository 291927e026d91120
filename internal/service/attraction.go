package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/velmir0/TourBooker/internal/domain"
	"github.com/velmir0/TourBooker/internal/service/ports"
)

const (
	defaultDuration     = "2-3 hours"
	defaultOpeningHours = "9:00 AM - 6:00 PM"

	defaultPage  = 1
	defaultLimit = 12
)

type AttractionService struct {
	repo ports.AttractionRepo
}

func NewAttractionService(repo ports.AttractionRepo) *AttractionService {
	return &AttractionService{repo: repo}
}

func (s *AttractionService) Create(ctx context.Context, input domain.CreateAttractionInput) (*domain.Attraction, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.Address == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	if input.CityID == "" {
		return nil, fmt.Errorf("%w: cityId is required", domain.ErrValidation)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.Rating < 0 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrValidation)
	}

	duration := input.Duration
	if duration == "" {
		duration = defaultDuration
	}
	openingHours := input.OpeningHours
	if openingHours == "" {
		openingHours = defaultOpeningHours
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	attraction := &domain.Attraction{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Images:       images,
		Price:        input.Price,
		Rating:       input.Rating,
		Duration:     duration,
		Address:      input.Address,
		OpeningHours: openingHours,
		Featured:     input.Featured,
		CityID:       input.CityID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, attraction); err != nil {
		return nil, fmt.Errorf("create attraction: %w", err)
	}

	return attraction, nil
}

func (s *AttractionService) GetByID(ctx context.Context, id string) (*domain.Attraction, error) {
	return s.repo.GetByID(ctx, id)
}

// List normalizes the paging inputs and returns one page of matches plus the
// total match count.
func (s *AttractionService) List(ctx context.Context, f domain.AttractionFilter) ([]*domain.Attraction, int, error) {
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}

	return s.repo.List(ctx, f)
}
