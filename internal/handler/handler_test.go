package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/velmir0/TourBooker/internal/domain"
	"github.com/velmir0/TourBooker/internal/handler/dto"
	hmocks "github.com/velmir0/TourBooker/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockCitySvc, *hmocks.MockAttractionSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	citySvc := hmocks.NewMockCitySvc(t)
	attractionSvc := hmocks.NewMockAttractionSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(citySvc, attractionSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/cities", h.CreateCity)
		api.GET("/cities", h.ListCities)
		api.GET("/cities/:id", h.GetCity)
		api.POST("/attractions", h.CreateAttraction)
		api.GET("/attractions", h.ListAttractions)
		api.GET("/attractions/:id", h.GetAttraction)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
	}

	return citySvc, attractionSvc, bookingSvc, r
}

// --- Cities ---

func TestHandler_CreateCity_Success(t *testing.T) {
	citySvc, _, _, r := setupRouter(t)

	city := &domain.City{
		ID:        uuid.New().String(),
		Name:      "Jaipur",
		Country:   "India",
		Image:     "https://img.example.com/jaipur.jpg",
		CreatedAt: time.Now(),
	}

	citySvc.EXPECT().Create(mock.Anything, mock.Anything).Return(city, nil)

	body, _ := json.Marshal(dto.CreateCityRequest{
		Name:    "Jaipur",
		Country: "India",
		Image:   "https://img.example.com/jaipur.jpg",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jaipur", resp.Name)
}

func TestHandler_CreateCity_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Jaipur"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCity_NotFound(t *testing.T) {
	citySvc, _, _, r := setupRouter(t)

	cityID := uuid.New().String()
	citySvc.EXPECT().GetByID(mock.Anything, cityID).Return(nil, domain.ErrCityNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities/"+cityID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListCities_Success(t *testing.T) {
	citySvc, _, _, r := setupRouter(t)

	cities := []*domain.City{
		{ID: "c1", Name: "Jaipur", CreatedAt: time.Now()},
		{ID: "c2", Name: "Udaipur", CreatedAt: time.Now()},
	}
	citySvc.EXPECT().List(mock.Anything).Return(cities, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Attractions ---

func TestHandler_CreateAttraction_Success(t *testing.T) {
	_, attractionSvc, _, r := setupRouter(t)

	attraction := &domain.Attraction{
		ID:        uuid.New().String(),
		Name:      "City Palace",
		Category:  domain.CategoryHistoricalPlaces,
		Images:    []string{},
		Price:     50,
		CityID:    "c1",
		CreatedAt: time.Now(),
	}

	attractionSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(attraction, nil)

	body, _ := json.Marshal(dto.CreateAttractionRequest{
		Name:        "City Palace",
		Description: "A historic royal palace",
		Category:    "Historical Places",
		Price:       50,
		Address:     "Old Town Road 1",
		CityID:      "c1",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attractions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AttractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "City Palace", resp.Name)
}

func TestHandler_CreateAttraction_ValidationError(t *testing.T) {
	_, attractionSvc, _, r := setupRouter(t)

	attractionSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(dto.CreateAttractionRequest{
		Name:        "City Palace",
		Description: "A historic royal palace",
		Category:    "volcano",
		Address:     "Old Town Road 1",
		CityID:      "c1",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attractions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAttraction_Success(t *testing.T) {
	_, attractionSvc, _, r := setupRouter(t)

	attractionID := uuid.New().String()
	attraction := &domain.Attraction{
		ID:       attractionID,
		Name:     "City Palace",
		Category: domain.CategoryHistoricalPlaces,
		Images:   []string{"https://img.example.com/palace.jpg"},
		Price:    50,
		CityID:   "c1",
		City: &domain.CityRef{
			ID:      "c1",
			Name:    "Jaipur",
			Country: "India",
			Image:   "https://img.example.com/jaipur.jpg",
		},
		CreatedAt: time.Now(),
	}

	attractionSvc.EXPECT().GetByID(mock.Anything, attractionID).Return(attraction, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attractions/"+attractionID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AttractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.CityID)
	assert.Equal(t, "Jaipur", resp.CityID.Name)
}

func TestHandler_GetAttraction_NotFound(t *testing.T) {
	_, attractionSvc, _, r := setupRouter(t)

	attractionID := uuid.New().String()
	attractionSvc.EXPECT().GetByID(mock.Anything, attractionID).Return(nil, domain.ErrAttractionNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attractions/"+attractionID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListAttractions_DefaultPagination(t *testing.T) {
	_, attractionSvc, _, r := setupRouter(t)

	attractionSvc.EXPECT().List(mock.Anything, domain.AttractionFilter{}).Return([]*domain.Attraction{}, 0, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attractions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AttractionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 12, resp.Pagination.Limit)
	assert.Equal(t, 0, resp.Pagination.Total)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
	assert.NotNil(t, resp.Attractions)
}

func TestHandler_ListAttractions_Filtered(t *testing.T) {
	_, attractionSvc, _, r := setupRouter(t)

	minPrice := 10.0
	featured := true
	expected := domain.AttractionFilter{
		CityID:   "c1",
		Category: domain.CategoryMuseum,
		MinPrice: &minPrice,
		Featured: &featured,
		Page:     2,
		Limit:    5,
	}

	attractions := []*domain.Attraction{
		{ID: "a1", Name: "City Palace", Images: []string{}, CreatedAt: time.Now()},
	}
	attractionSvc.EXPECT().List(mock.Anything, expected).Return(attractions, 11, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/attractions?cityId=c1&category=Museum&minPrice=10&featured=true&page=2&limit=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AttractionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Attractions, 1)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 5, resp.Pagination.Limit)
	assert.Equal(t, 11, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestHandler_ListAttractions_IgnoresMalformedQuery(t *testing.T) {
	_, attractionSvc, _, r := setupRouter(t)

	attractionSvc.EXPECT().List(mock.Anything, domain.AttractionFilter{}).Return([]*domain.Attraction{}, 0, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/attractions?minPrice=cheap&page=first", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		UserID:     "guest",
		Tickets:    3,
		Date:       time.Now().Add(24 * time.Hour),
		Time:       "10:00",
		TotalPrice: 150,
		Status:     domain.BookingStatusConfirmed,
		GuestInfo:  domain.GuestInfo{Name: "Alice", Email: "alice@example.com"},
		Attraction: &domain.AttractionRef{ID: "a1", Name: "City Palace", Images: []string{}, Price: 50, CityID: "c1"},
		CreatedAt:  time.Now(),
	}

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		AttractionID: "a1",
		Tickets:      3,
		Date:         time.Now().Add(24 * time.Hour).Format("2006-01-02"),
		Time:         "10:00",
		GuestInfo:    dto.GuestInfoRequest{Name: "Alice", Email: "alice@example.com"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 150.0, resp.TotalPrice)
	require.NotNil(t, resp.AttractionID)
	assert.Equal(t, "a1", resp.AttractionID.ID)
}

func TestHandler_CreateBooking_MissingAttraction(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"tickets":2,"date":"2030-01-01","time":"10:00","guestInfo":{"name":"Alice","email":"alice@example.com"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"attractionId":"a1","tickets":2,"date":"not-a-date","time":"10:00","guestInfo":{"name":"Alice","email":"alice@example.com"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_AttractionNotFound(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrAttractionNotFound)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		AttractionID: "missing",
		Tickets:      2,
		Date:         "2030-01-01",
		Time:         "10:00",
		GuestInfo:    dto.GuestInfoRequest{Name: "Alice", Email: "alice@example.com"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBookings_FiltersByUser(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookings := []*domain.Booking{
		{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed, Date: time.Now(), CreatedAt: time.Now()},
	}
	bookingSvc.EXPECT().List(mock.Anything, domain.BookingFilter{UserID: "u1"}).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?userId=u1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().GetByID(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	citySvc, _, _, r := setupRouter(t)

	cityID := uuid.New().String()
	citySvc.EXPECT().GetByID(mock.Anything, cityID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities/"+cityID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}
