package ports

import (
	"context"

	"github.com/velmir0/TourBooker/internal/domain"
)

type AttractionRepo interface {
	Create(ctx context.Context, a *domain.Attraction) error
	GetByID(ctx context.Context, id string) (*domain.Attraction, error)
	List(ctx context.Context, f domain.AttractionFilter) ([]*domain.Attraction, int, error)
}
