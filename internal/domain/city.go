package domain

import "time"

type City struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateCityInput struct {
	Name        string
	Country     string
	Image       string
	Description string
}

// CityRef is the flattened city reference embedded in attraction listings.
type CityRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Image   string `json:"image"`
}
