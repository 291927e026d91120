package ports

import (
	"context"

	"github.com/velmir0/TourBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, attraction *domain.Attraction)
}
