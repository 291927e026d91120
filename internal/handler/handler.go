package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/velmir0/TourBooker/internal/domain"
	"github.com/velmir0/TourBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CitySvc interface {
	Create(ctx context.Context, input domain.CreateCityInput) (*domain.City, error)
	GetByID(ctx context.Context, id string) (*domain.City, error)
	List(ctx context.Context) ([]*domain.City, error)
}

type AttractionSvc interface {
	Create(ctx context.Context, input domain.CreateAttractionInput) (*domain.Attraction, error)
	GetByID(ctx context.Context, id string) (*domain.Attraction, error)
	List(ctx context.Context, f domain.AttractionFilter) ([]*domain.Attraction, int, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, f domain.BookingFilter) ([]*domain.Booking, error)
}

type Handler struct {
	cityService       CitySvc
	attractionService AttractionSvc
	bookingService    BookingSvc
}

func NewHandler(cityService CitySvc, attractionService AttractionSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		cityService:       cityService,
		attractionService: attractionService,
		bookingService:    bookingService,
	}
}

// Cities

func (h *Handler) CreateCity(c *ginext.Context) {
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.CreateCityInput{
		Name:        req.Name,
		Country:     req.Country,
		Image:       req.Image,
		Description: req.Description,
	}

	city, err := h.cityService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCityResponse(city))
}

func (h *Handler) GetCity(c *ginext.Context) {
	city, err := h.cityService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCityResponse(city))
}

func (h *Handler) ListCities(c *ginext.Context) {
	cities, err := h.cityService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CityResponse, 0, len(cities))
	for _, city := range cities {
		resp = append(resp, dto.ToCityResponse(city))
	}

	c.JSON(http.StatusOK, resp)
}

// Attractions

func (h *Handler) CreateAttraction(c *ginext.Context) {
	var req dto.CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.CreateAttractionInput{
		Name:         req.Name,
		Description:  req.Description,
		Category:     domain.Category(req.Category),
		Images:       req.Images,
		Price:        req.Price,
		Rating:       req.Rating,
		Duration:     req.Duration,
		Address:      req.Address,
		OpeningHours: req.OpeningHours,
		Featured:     req.Featured,
		CityID:       req.CityID,
	}

	attraction, err := h.attractionService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttractionResponse(attraction))
}

func (h *Handler) GetAttraction(c *ginext.Context) {
	attraction, err := h.attractionService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttractionResponse(attraction))
}

func (h *Handler) ListAttractions(c *ginext.Context) {
	filter := attractionFilterFromQuery(c)

	attractions, total, err := h.attractionService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttractionResponse, 0, len(attractions))
	for _, a := range attractions {
		resp = append(resp, dto.ToAttractionResponse(a))
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	c.JSON(http.StatusOK, dto.AttractionListResponse{
		Attractions: resp,
		Pagination:  dto.NewPagination(page, limit, total),
	})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "invalid date format, expected RFC3339 or YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateBookingInput{
		AttractionID: req.AttractionID,
		UserID:       req.UserID,
		Tickets:      req.Tickets,
		Date:         date,
		Time:         req.Time,
		GuestInfo: domain.GuestInfo{
			Name:  req.GuestInfo.Name,
			Email: req.GuestInfo.Email,
			Phone: req.GuestInfo.Phone,
		},
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter := domain.BookingFilter{UserID: c.Query("userId")}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCityNotFound),
		errors.Is(err, domain.ErrAttractionNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	default:
		// store failures surface the underlying message
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()})
	}
}

func attractionFilterFromQuery(c *ginext.Context) domain.AttractionFilter {
	f := domain.AttractionFilter{
		CityID:   c.Query("cityId"),
		Category: domain.Category(c.Query("category")),
	}

	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
		f.MinRating = &v
	}
	if v, err := strconv.ParseBool(c.Query("featured")); err == nil {
		f.Featured = &v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		f.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		f.Limit = v
	}

	return f
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", raw)
}
