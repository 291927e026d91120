package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/velmir0/TourBooker/internal/domain"
	"github.com/velmir0/TourBooker/internal/service/ports/mocks"
)

func validAttractionInput() domain.CreateAttractionInput {
	return domain.CreateAttractionInput{
		Name:        "City Palace",
		Description: "A historic royal palace",
		Category:    domain.CategoryHistoricalPlaces,
		Price:       50,
		Rating:      4.5,
		Address:     "Old Town Road 1",
		CityID:      "c1",
	}
}

func TestAttractionService_Create_Success(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	attraction, err := svc.Create(context.Background(), validAttractionInput())

	require.NoError(t, err)
	assert.NotEmpty(t, attraction.ID)
	assert.Equal(t, "City Palace", attraction.Name)
	assert.Equal(t, domain.CategoryHistoricalPlaces, attraction.Category)
}

func TestAttractionService_Create_AppliesDefaults(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	attraction, err := svc.Create(context.Background(), validAttractionInput())

	require.NoError(t, err)
	assert.Equal(t, "2-3 hours", attraction.Duration)
	assert.Equal(t, "9:00 AM - 6:00 PM", attraction.OpeningHours)
	assert.NotNil(t, attraction.Images)
	assert.Empty(t, attraction.Images)
}

func TestAttractionService_Create_KeepsProvidedValues(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validAttractionInput()
	input.Duration = "Full day"
	input.OpeningHours = "24 hours"
	input.Images = []string{"https://img.example.com/a.jpg"}

	attraction, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Full day", attraction.Duration)
	assert.Equal(t, "24 hours", attraction.OpeningHours)
	assert.Equal(t, []string{"https://img.example.com/a.jpg"}, attraction.Images)
}

func TestAttractionService_Create_UnknownCategory(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	input := validAttractionInput()
	input.Category = "volcano"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttractionService_Create_NegativePrice(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	input := validAttractionInput()
	input.Price = -1

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttractionService_Create_RatingOutOfRange(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	input := validAttractionInput()
	input.Rating = 5.5

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttractionService_Create_MissingCity(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	input := validAttractionInput()
	input.CityID = ""

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAttractionService_List_DefaultsPaging(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	expected := domain.AttractionFilter{Page: 1, Limit: 12}
	repo.EXPECT().List(mock.Anything, expected).Return([]*domain.Attraction{}, 0, nil)

	_, total, err := svc.List(context.Background(), domain.AttractionFilter{})

	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAttractionService_List_KeepsExplicitPaging(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	filter := domain.AttractionFilter{Page: 3, Limit: 5}
	attractions := []*domain.Attraction{{ID: "a1"}}
	repo.EXPECT().List(mock.Anything, filter).Return(attractions, 11, nil)

	result, total, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 11, total)
}

func TestAttractionService_List_RepoError(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	repo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, 0, errors.New("db error"))

	_, _, err := svc.List(context.Background(), domain.AttractionFilter{})

	require.Error(t, err)
}

func TestAttractionService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockAttractionRepo(t)
	svc := NewAttractionService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrAttractionNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAttractionNotFound)
}
