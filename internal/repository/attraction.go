package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/velmir0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const attractionColumns = `a.id, a.name, a.description, a.category, a.images,
			a.price, a.rating, COALESCE(a.reviews_count, 0), a.duration, a.address,
			a.opening_hours, a.featured, a.city_id, a.created_at, a.updated_at,
			c.id, c.name, c.country, c.image`

type AttractionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAttractionRepo(db *dbpg.DB) *AttractionRepository {
	return &AttractionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AttractionRepository) Create(ctx context.Context, a *domain.Attraction) error {
	query := `INSERT INTO attractions (id, name, description, category, images, price, rating,
				reviews_count, duration, address, opening_hours, featured, city_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Name, a.Description, a.Category, encodeImages(a.Images),
		a.Price, a.Rating, a.ReviewsCount, a.Duration, a.Address,
		a.OpeningHours, a.Featured, a.CityID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: city %s does not exist", domain.ErrValidation, a.CityID)
		}
		return fmt.Errorf("insert attraction: %w", err)
	}

	return nil
}

func (r *AttractionRepository) GetByID(ctx context.Context, id string) (*domain.Attraction, error) {
	query := `SELECT ` + attractionColumns + `
			  FROM attractions a
			  LEFT JOIN cities c ON c.id = a.city_id
			  WHERE a.id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get attraction: %w", err)
	}

	a, err := scanAttraction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttractionNotFound
		}
		return nil, fmt.Errorf("scan attraction: %w", err)
	}

	return a, nil
}

// List returns one page of attractions matching the filter plus the total
// match count regardless of page/limit. Filters are conjunctive; unset
// fields are omitted from the query.
func (r *AttractionRepository) List(ctx context.Context, f domain.AttractionFilter) ([]*domain.Attraction, int, error) {
	where := []string{}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CityID != "" {
		where = append(where, "a.city_id = "+arg(f.CityID))
	}
	if f.Category != "" {
		where = append(where, "a.category = "+arg(f.Category))
	}
	if f.MinPrice != nil {
		where = append(where, "a.price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		where = append(where, "a.price <= "+arg(*f.MaxPrice))
	}
	if f.MinRating != nil {
		where = append(where, "a.rating >= "+arg(*f.MinRating))
	}
	if f.Featured != nil {
		where = append(where, "a.featured = "+arg(*f.Featured))
	}

	cond := "TRUE"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM attractions a WHERE ` + cond

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count attractions: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan attraction count: %w", err)
	}

	offset := (f.Page - 1) * f.Limit
	query := `SELECT ` + attractionColumns + `
			  FROM attractions a
			  LEFT JOIN cities c ON c.id = a.city_id
			  WHERE ` + cond + `
			  ORDER BY a.rating DESC, a.created_at DESC
			  LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(offset)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list attractions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Attraction
	for rows.Next() {
		a, err := scanAttraction(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("scan attraction: %w", err)
		}
		res = append(res, a)
	}

	return res, total, rows.Err()
}

func scanAttraction(scan func(...any) error) (*domain.Attraction, error) {
	var (
		a           domain.Attraction
		rawImages   string
		cityFK      sql.NullString
		cityID      sql.NullString
		cityName    sql.NullString
		cityCountry sql.NullString
		cityImage   sql.NullString
	)

	err := scan(
		&a.ID, &a.Name, &a.Description, &a.Category, &rawImages,
		&a.Price, &a.Rating, &a.ReviewsCount, &a.Duration, &a.Address,
		&a.OpeningHours, &a.Featured, &cityFK, &a.CreatedAt, &a.UpdatedAt,
		&cityID, &cityName, &cityCountry, &cityImage,
	)
	if err != nil {
		return nil, err
	}

	a.CityID = cityFK.String
	a.Images = parseImages(rawImages)
	if cityID.Valid {
		a.City = &domain.CityRef{
			ID:      cityID.String,
			Name:    cityName.String,
			Country: cityCountry.String,
			Image:   cityImage.String,
		}
	}

	return &a, nil
}
