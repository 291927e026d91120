package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/velmir0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `b.id, b.user_id, b.tickets, b.date, b.time, b.total_price,
			b.status, b.guest_name, b.guest_email, b.guest_phone, b.created_at, b.updated_at,
			a.id, a.name, a.images, a.price, a.city_id`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, attraction_id, user_id, tickets, date, time,
				total_price, status, guest_name, guest_email, guest_phone, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	attractionID := ""
	if b.Attraction != nil {
		attractionID = b.Attraction.ID
	}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, attractionID, b.UserID, b.Tickets, b.Date, b.Time,
		b.TotalPrice, b.Status, b.GuestInfo.Name, b.GuestInfo.Email, b.GuestInfo.Phone,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// attraction deleted between lookup and insert
			return domain.ErrAttractionNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  LEFT JOIN attractions a ON a.id = b.attraction_id
			  WHERE b.id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  LEFT JOIN attractions a ON a.id = b.attraction_id`
	args := []any{}

	if f.UserID != "" {
		query += ` WHERE b.user_id = $1`
		args = append(args, f.UserID)
	}

	query += ` ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(scan func(...any) error) (*domain.Booking, error) {
	var (
		b         domain.Booking
		attrID    sql.NullString
		attrName  sql.NullString
		rawImages sql.NullString
		attrPrice sql.NullFloat64
		cityID    sql.NullString
	)

	err := scan(
		&b.ID, &b.UserID, &b.Tickets, &b.Date, &b.Time, &b.TotalPrice,
		&b.Status, &b.GuestInfo.Name, &b.GuestInfo.Email, &b.GuestInfo.Phone,
		&b.CreatedAt, &b.UpdatedAt,
		&attrID, &attrName, &rawImages, &attrPrice, &cityID,
	)
	if err != nil {
		return nil, err
	}

	if attrID.Valid {
		b.Attraction = &domain.AttractionRef{
			ID:     attrID.String,
			Name:   attrName.String,
			Images: parseImages(rawImages.String),
			Price:  attrPrice.Float64,
			CityID: cityID.String,
		}
	}

	return &b, nil
}
