package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/velmir0/TourBooker/internal/domain"
	"github.com/velmir0/TourBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultUserID = "guest"

// basic local@domain shape, nothing more
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

type BookingService struct {
	bookingRepo    ports.BookingRepo
	attractionRepo ports.AttractionRepo
	notifier       ports.BookingNotifier
	logger         logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	attractionRepo ports.AttractionRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		attractionRepo: attractionRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Tickets < 1 {
		return nil, fmt.Errorf("%w: tickets must be at least 1", domain.ErrValidation)
	}
	if input.GuestInfo.Name == "" {
		return nil, fmt.Errorf("%w: guest name is required", domain.ErrValidation)
	}
	if input.GuestInfo.Email == "" {
		return nil, fmt.Errorf("%w: guest email is required", domain.ErrValidation)
	}
	if !emailPattern.MatchString(input.GuestInfo.Email) {
		return nil, fmt.Errorf("%w: guest email is invalid", domain.ErrValidation)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if input.Date.Before(today) {
		return nil, fmt.Errorf("%w: date must not be in the past", domain.ErrValidation)
	}

	attraction, err := s.attractionRepo.GetByID(ctx, input.AttractionID)
	if err != nil {
		return nil, fmt.Errorf("check attraction: %w", err)
	}

	userID := input.UserID
	if userID == "" {
		userID = defaultUserID
	}

	// Price is captured at creation time and never recomputed.
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		Tickets:    input.Tickets,
		Date:       input.Date,
		Time:       input.Time,
		TotalPrice: attraction.Price * float64(input.Tickets),
		Status:     domain.BookingStatusConfirmed,
		GuestInfo:  input.GuestInfo,
		Attraction: &domain.AttractionRef{
			ID:     attraction.ID,
			Name:   attraction.Name,
			Images: attraction.Images,
			Price:  attraction.Price,
			CityID: attraction.CityID,
		},
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("attraction_id", attraction.ID),
		logger.Int("tickets", booking.Tickets),
		logger.Any("total_price", booking.TotalPrice),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, attraction)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, f)
}
