package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/velmir0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCityRepo(db *dbpg.DB) *CityRepository {
	return &CityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CityRepository) Create(ctx context.Context, c *domain.City) error {
	query := `INSERT INTO cities (id, name, country, image, description, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.Country, c.Image, c.Description, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert city: %w", err)
	}

	return nil
}

func (r *CityRepository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	query := `SELECT id, name, country, image, description, created_at
			  FROM cities
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get city: %w", err)
	}

	var c domain.City
	if err = row.Scan(&c.ID, &c.Name, &c.Country, &c.Image, &c.Description, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCityNotFound
		}
		return nil, fmt.Errorf("scan city: %w", err)
	}

	return &c, nil
}

func (r *CityRepository) List(ctx context.Context) ([]*domain.City, error) {
	query := `SELECT id, name, country, image, description, created_at
			  FROM cities
			  ORDER BY name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var res []*domain.City
	for rows.Next() {
		var c domain.City
		if err = rows.Scan(&c.ID, &c.Name, &c.Country, &c.Image, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
