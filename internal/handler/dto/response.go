package dto

import (
	"time"

	"github.com/velmir0/TourBooker/internal/domain"
)

type CityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Image       string `json:"image"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

type CityRefResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Image   string `json:"image"`
}

type AttractionResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	Images       []string         `json:"images"`
	Price        float64          `json:"price"`
	Rating       float64          `json:"rating"`
	ReviewsCount int              `json:"reviews_count"`
	Duration     string           `json:"duration"`
	Address      string           `json:"address"`
	OpeningHours string           `json:"openingHours"`
	Featured     bool             `json:"featured"`
	CityID       *CityRefResponse `json:"cityId"`
	CreatedAt    string           `json:"createdAt"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type AttractionListResponse struct {
	Attractions []AttractionResponse `json:"attractions"`
	Pagination  PaginationResponse   `json:"pagination"`
}

type AttractionRefResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Images []string `json:"images"`
	Price  float64  `json:"price"`
	CityID string   `json:"cityId"`
}

type GuestInfoResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookingResponse struct {
	ID           string                 `json:"id"`
	Tickets      int                    `json:"tickets"`
	Date         string                 `json:"date"`
	Time         string                 `json:"time"`
	TotalPrice   float64                `json:"totalPrice"`
	Status       string                 `json:"status"`
	GuestInfo    GuestInfoResponse      `json:"guestInfo"`
	AttractionID *AttractionRefResponse `json:"attractionId"`
	CreatedAt    string                 `json:"createdAt"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToCityResponse(c *domain.City) CityResponse {
	return CityResponse{
		ID:          c.ID,
		Name:        c.Name,
		Country:     c.Country,
		Image:       c.Image,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func ToAttractionResponse(a *domain.Attraction) AttractionResponse {
	var city *CityRefResponse
	if a.City != nil {
		city = &CityRefResponse{
			ID:      a.City.ID,
			Name:    a.City.Name,
			Country: a.City.Country,
			Image:   a.City.Image,
		}
	}

	return AttractionResponse{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Category:     string(a.Category),
		Images:       a.Images,
		Price:        a.Price,
		Rating:       a.Rating,
		ReviewsCount: a.ReviewsCount,
		Duration:     a.Duration,
		Address:      a.Address,
		OpeningHours: a.OpeningHours,
		Featured:     a.Featured,
		CityID:       city,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}

func NewPagination(page, limit, total int) PaginationResponse {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	var attraction *AttractionRefResponse
	if b.Attraction != nil {
		attraction = &AttractionRefResponse{
			ID:     b.Attraction.ID,
			Name:   b.Attraction.Name,
			Images: b.Attraction.Images,
			Price:  b.Attraction.Price,
			CityID: b.Attraction.CityID,
		}
	}

	return BookingResponse{
		ID:         b.ID,
		Tickets:    b.Tickets,
		Date:       b.Date.Format(time.RFC3339),
		Time:       b.Time,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		GuestInfo: GuestInfoResponse{
			Name:  b.GuestInfo.Name,
			Email: b.GuestInfo.Email,
			Phone: b.GuestInfo.Phone,
		},
		AttractionID: attraction,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}
