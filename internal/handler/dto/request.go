package dto

type CreateCityRequest struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country" binding:"required"`
	Image       string `json:"image" binding:"required"`
	Description string `json:"description"`
}

type CreateAttractionRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Images       []string `json:"images"`
	Price        float64  `json:"price"`
	Rating       float64  `json:"rating"`
	Duration     string   `json:"duration"`
	Address      string   `json:"address" binding:"required"`
	OpeningHours string   `json:"openingHours"`
	Featured     bool     `json:"featured"`
	CityID       string   `json:"cityId" binding:"required"`
}

type GuestInfoRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

type CreateBookingRequest struct {
	AttractionID string           `json:"attractionId" binding:"required"`
	UserID       string           `json:"userId"`
	Tickets      int              `json:"tickets" binding:"required"`
	Date         string           `json:"date" binding:"required"`
	Time         string           `json:"time" binding:"required"`
	GuestInfo    GuestInfoRequest `json:"guestInfo" binding:"required"`
}
