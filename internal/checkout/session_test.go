package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmir0/TourBooker/internal/cart"
	"github.com/velmir0/TourBooker/internal/domain"
)

func TestSession_SelectCity(t *testing.T) {
	s := NewSession(cart.NewMemoryStorage())

	require.Nil(t, s.SelectedCity())

	city := &domain.City{ID: "c1", Name: "Jaipur", Country: "India"}
	require.NoError(t, s.SelectCity(city))

	selected := s.SelectedCity()
	require.NotNil(t, selected)
	assert.Equal(t, "Jaipur", selected.Name)
}

func TestSession_SetVisitors(t *testing.T) {
	s := NewSession(cart.NewMemoryStorage())

	visitors := []Visitor{
		{Name: "Alice", Age: "30", Gender: "female", Nationality: "Indian"},
		{Name: "Bob", Age: "8", Gender: "male", Nationality: "Indian"},
	}

	require.NoError(t, s.SetVisitors(visitors))
	assert.Len(t, s.Visitors(), 2)
}

func TestSession_SetVisitors_Incomplete(t *testing.T) {
	s := NewSession(cart.NewMemoryStorage())

	visitors := []Visitor{
		{Name: "Alice", Age: "30", Gender: "female", Nationality: "Indian"},
		{Name: "Bob"},
	}

	err := s.SetVisitors(visitors)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, s.Visitors())
}

func TestSession_PersistsAcrossSessions(t *testing.T) {
	store := cart.NewMemoryStorage()

	s := NewSession(store)
	require.NoError(t, s.SelectCity(&domain.City{ID: "c1", Name: "Jaipur"}))
	require.NoError(t, s.SetVisitors([]Visitor{
		{Name: "Alice", Age: "30", Gender: "female", Nationality: "Indian"},
	}))

	reloaded := NewSession(store)
	require.NotNil(t, reloaded.SelectedCity())
	assert.Equal(t, "c1", reloaded.SelectedCity().ID)
	assert.Len(t, reloaded.Visitors(), 1)
}

func TestSession_MalformedStateResets(t *testing.T) {
	store := cart.NewMemoryStorage()
	require.NoError(t, store.Save([]byte("{broken")))

	s := NewSession(store)

	assert.Nil(t, s.SelectedCity())
	assert.Empty(t, s.Visitors())
}

func TestSession_Clear(t *testing.T) {
	store := cart.NewMemoryStorage()

	s := NewSession(store)
	require.NoError(t, s.SelectCity(&domain.City{ID: "c1"}))
	require.NoError(t, s.Clear())

	assert.Nil(t, s.SelectedCity())

	reloaded := NewSession(store)
	assert.Nil(t, reloaded.SelectedCity())
}
