package domain

import "errors"

var (
	ErrCityNotFound       = errors.New("city not found")
	ErrAttractionNotFound = errors.New("attraction not found")
	ErrBookingNotFound    = errors.New("booking not found")
)

var (
	ErrValidation = errors.New("validation error")
)
