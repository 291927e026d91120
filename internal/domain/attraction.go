package domain

import "time"

type Category string

const (
	CategoryMuseum           Category = "Museum"
	CategoryPark             Category = "Park"
	CategoryMonument         Category = "Monument"
	CategoryBeach            Category = "Beach"
	CategoryRestaurant       Category = "Restaurant"
	CategoryShopping         Category = "Shopping"
	CategoryEntertainment    Category = "Entertainment"
	CategoryAdventure        Category = "Adventure"
	CategoryCultural         Category = "Cultural"
	CategoryHeritage         Category = "Heritage"
	CategoryHistoricalPlaces Category = "Historical Places"
	CategoryZoologicalParks  Category = "Zoological Parks"
	CategoryFlowerParks      Category = "Flower Parks"
	CategoryReligiousPlaces  Category = "Religious Places"
	CategoryOther            Category = "Other"
)

var Categories = []Category{
	CategoryMuseum, CategoryPark, CategoryMonument, CategoryBeach,
	CategoryRestaurant, CategoryShopping, CategoryEntertainment,
	CategoryAdventure, CategoryCultural, CategoryHeritage,
	CategoryHistoricalPlaces, CategoryZoologicalParks, CategoryFlowerParks,
	CategoryReligiousPlaces, CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Attraction struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     Category  `json:"category"`
	Images       []string  `json:"images"`
	Price        float64   `json:"price"`
	Rating       float64   `json:"rating"`
	ReviewsCount int       `json:"reviews_count"`
	Duration     string    `json:"duration"`
	Address      string    `json:"address"`
	OpeningHours string    `json:"opening_hours"`
	Featured     bool      `json:"featured"`
	CityID       string    `json:"city_id"`
	City         *CityRef  `json:"city"` // nil when the city link is broken
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AttractionRef is the flattened attraction reference embedded in bookings.
type AttractionRef struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Images []string `json:"images"`
	Price  float64  `json:"price"`
	CityID string   `json:"city_id"`
}

type CreateAttractionInput struct {
	Name         string
	Description  string
	Category     Category
	Images       []string
	Price        float64
	Rating       float64
	Duration     string
	Address      string
	OpeningHours string
	Featured     bool
	CityID       string
}

// AttractionFilter holds the conjunctive listing filters. Nil fields are
// omitted from the query rather than matched as wildcards.
type AttractionFilter struct {
	CityID    string
	Category  Category
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Featured  *bool
	Page      int
	Limit     int
}
