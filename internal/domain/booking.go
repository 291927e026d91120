package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type GuestInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Booking struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Tickets    int            `json:"tickets"`
	Date       time.Time      `json:"date"`
	Time       string         `json:"time"`
	TotalPrice float64        `json:"total_price"`
	Status     BookingStatus  `json:"status"`
	GuestInfo  GuestInfo      `json:"guest_info"`
	Attraction *AttractionRef `json:"attraction"` // nil when the attraction link is broken
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type CreateBookingInput struct {
	AttractionID string
	UserID       string
	Tickets      int
	Date         time.Time
	Time         string
	GuestInfo    GuestInfo
}

type BookingFilter struct {
	UserID string
}
