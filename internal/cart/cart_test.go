package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmir0/TourBooker/internal/domain"
)

func palace() *domain.Attraction {
	return &domain.Attraction{ID: "a1", Name: "City Palace", Price: 50}
}

func freeFort() *domain.Attraction {
	return &domain.Attraction{ID: "a2", Name: "Old Fort", Price: 0}
}

func TestCart_Add_Defaults(t *testing.T) {
	c := New(NewMemoryStorage())

	require.NoError(t, c.Add(palace()))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "a1", lines[0].AttractionID)
	assert.Equal(t, TicketCounts{Adult: 2}, lines[0].Tickets)
	assert.Equal(t, 50.0, lines[0].UnitPrice)
}

func TestCart_Add_DuplicateIsNoop(t *testing.T) {
	c := New(NewMemoryStorage())

	require.NoError(t, c.Add(palace()))
	require.NoError(t, c.SetTicketCount("a1", TicketAdult, 4))
	require.NoError(t, c.Add(palace()))

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 4, c.Lines()[0].Tickets.Adult)
}

func TestCart_Remove(t *testing.T) {
	c := New(NewMemoryStorage())

	require.NoError(t, c.Add(palace()))
	require.NoError(t, c.Add(freeFort()))
	require.NoError(t, c.Remove("a1"))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "a2", lines[0].AttractionID)

	// absent line
	require.NoError(t, c.Remove("missing"))
	assert.Equal(t, 1, c.Len())
}

func TestCart_SetTicketCount_ClampsNegative(t *testing.T) {
	c := New(NewMemoryStorage())

	require.NoError(t, c.Add(palace()))
	require.NoError(t, c.SetTicketCount("a1", TicketChild, -5))

	assert.Equal(t, 0, c.Lines()[0].Tickets.Child)
}

func TestCart_SetTicketCount_UnknownCategory(t *testing.T) {
	c := New(NewMemoryStorage())

	require.NoError(t, c.Add(palace()))
	require.NoError(t, c.SetTicketCount("a1", TicketCategory("infant"), 3))

	assert.Equal(t, TicketCounts{Adult: 2}, c.Lines()[0].Tickets)
}

func TestLine_Total_CategoryRatesWhenFree(t *testing.T) {
	l := &Line{UnitPrice: 0, Tickets: TicketCounts{Adult: 1, Child: 1}}

	// 50 + 40
	assert.Equal(t, 90.0, l.Total())
}

func TestLine_Total_AllCategoryRates(t *testing.T) {
	l := &Line{UnitPrice: 0, Tickets: TicketCounts{Adult: 2, Child: 1, SeniorCitizen: 1, ForeignNationals: 1}}

	// 100 + 40 + 30 + 100
	assert.Equal(t, 270.0, l.Total())
}

func TestLine_Total_PricedPerTicket(t *testing.T) {
	l := &Line{UnitPrice: 50, Tickets: TicketCounts{Adult: 2, Child: 1}}

	assert.Equal(t, 150.0, l.Total())
}

func TestLine_Total_FallbackWhenZeroProduct(t *testing.T) {
	l := &Line{UnitPrice: 20, Tickets: TicketCounts{}}

	assert.Equal(t, 200.0, l.Total())
}

func TestLine_Total_FreeWithNoTickets(t *testing.T) {
	l := &Line{UnitPrice: 0, Tickets: TicketCounts{}}

	assert.Equal(t, 0.0, l.Total())
}

func TestCart_OrderTotal(t *testing.T) {
	c := New(NewMemoryStorage())

	require.NoError(t, c.Add(palace()))   // 50 * 2 = 100
	require.NoError(t, c.Add(freeFort())) // 2 adults at rate 50 = 100

	assert.Equal(t, 200.0, c.OrderTotal())
	assert.Equal(t, 4, c.TotalVisitors())
}

func TestCart_PersistsAcrossSessions(t *testing.T) {
	store := NewMemoryStorage()

	c := New(store)
	require.NoError(t, c.Add(palace()))
	require.NoError(t, c.SetTicketCount("a1", TicketSeniorCitizen, 1))
	require.NoError(t, c.SetDate("a1", "2026-10-01"))

	reloaded := New(store)
	lines := reloaded.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "a1", lines[0].AttractionID)
	assert.Equal(t, 1, lines[0].Tickets.SeniorCitizen)
	assert.Equal(t, "2026-10-01", lines[0].SelectedDate)
}

func TestCart_MalformedStateStartsEmpty(t *testing.T) {
	store := NewMemoryStorage()
	require.NoError(t, store.Save([]byte("not json")))

	c := New(store)

	assert.Equal(t, 0, c.Len())
}

func TestCart_Clear(t *testing.T) {
	store := NewMemoryStorage()

	c := New(store)
	require.NoError(t, c.Add(palace()))
	require.NoError(t, c.Clear())

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.OrderTotal())

	reloaded := New(store)
	assert.Equal(t, 0, reloaded.Len())
}

func TestCart_InsertionOrder(t *testing.T) {
	c := New(NewMemoryStorage())

	require.NoError(t, c.Add(freeFort()))
	require.NoError(t, c.Add(palace()))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a2", lines[0].AttractionID)
	assert.Equal(t, "a1", lines[1].AttractionID)
}

func TestFileStorage_MissingFile(t *testing.T) {
	s := NewFileStorage(t.TempDir() + "/cart.json")

	data, err := s.Load()

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/cart.json"
	s := NewFileStorage(path)

	require.NoError(t, s.Save([]byte(`[{"attractionId":"a1"}]`)))

	data, err := s.Load()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"attractionId":"a1"}]`, string(data))
}
