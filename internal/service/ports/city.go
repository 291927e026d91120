package ports

import (
	"context"

	"github.com/velmir0/TourBooker/internal/domain"
)

type CityRepo interface {
	Create(ctx context.Context, c *domain.City) error
	GetByID(ctx context.Context, id string) (*domain.City, error)
	List(ctx context.Context) ([]*domain.City, error)
}
