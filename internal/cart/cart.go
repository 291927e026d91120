// Package cart implements the client-side shopping cart: an ordered set of
// ticket selections keyed by attraction, with order totals and persistence
// across sessions.
package cart

import (
	"encoding/json"
	"fmt"

	"github.com/velmir0/TourBooker/internal/domain"
)

type TicketCategory string

const (
	TicketAdult            TicketCategory = "adult"
	TicketChild            TicketCategory = "child"
	TicketSeniorCitizen    TicketCategory = "seniorCitizen"
	TicketForeignNationals TicketCategory = "foreignNationals"
)

// Per-category rates applied only when an attraction has no price of its own.
const (
	rateAdult            = 50.0
	rateChild            = 40.0
	rateSeniorCitizen    = 30.0
	rateForeignNationals = 100.0
)

// Flat total applied when unit price times ticket count comes out to zero.
// Inherited behavior; kept for compatibility with existing order totals.
const fallbackLineTotal = 200.0

type TicketCounts struct {
	Adult            int `json:"adult"`
	Child            int `json:"child"`
	SeniorCitizen    int `json:"seniorCitizen"`
	ForeignNationals int `json:"foreignNationals"`
}

func (t TicketCounts) Total() int {
	return t.Adult + t.Child + t.SeniorCitizen + t.ForeignNationals
}

// Line is one attraction's ticket selection. UnitPrice is captured at
// add-time and not refreshed afterwards.
type Line struct {
	AttractionID string       `json:"attractionId"`
	Name         string       `json:"name"`
	UnitPrice    float64      `json:"price"`
	Tickets      TicketCounts `json:"tickets"`
	SelectedDate string       `json:"selectedDate,omitempty"`
}

// Total computes the line price. Free attractions fall back to the
// per-category rate table; priced attractions charge unit price per ticket,
// degrading to the flat fallback when the product is zero.
func (l *Line) Total() float64 {
	if l.UnitPrice == 0 {
		return float64(l.Tickets.Adult)*rateAdult +
			float64(l.Tickets.Child)*rateChild +
			float64(l.Tickets.SeniorCitizen)*rateSeniorCitizen +
			float64(l.Tickets.ForeignNationals)*rateForeignNationals
	}

	total := l.UnitPrice * float64(l.Tickets.Total())
	if total == 0 {
		return fallbackLineTotal
	}

	return total
}

// Cart holds at most one line per attraction, in insertion order. Every
// mutation is written through to storage.
type Cart struct {
	store Storage
	lines []*Line
}

// New rehydrates the cart from storage. Unreadable or malformed saved state
// starts an empty cart rather than failing.
func New(store Storage) *Cart {
	c := &Cart{store: store}

	data, err := store.Load()
	if err != nil || len(data) == 0 {
		return c
	}

	var lines []*Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return c
	}
	c.lines = lines

	return c
}

// Add appends a line for the attraction with default ticket counts. Adding
// an attraction that is already in the cart is a no-op.
func (c *Cart) Add(a *domain.Attraction) error {
	if c.find(a.ID) != nil {
		return nil
	}

	c.lines = append(c.lines, &Line{
		AttractionID: a.ID,
		Name:         a.Name,
		UnitPrice:    a.Price,
		Tickets:      TicketCounts{Adult: 2},
	})

	return c.persist()
}

// Remove deletes the matching line; absent lines are a no-op.
func (c *Cart) Remove(attractionID string) error {
	for i, l := range c.lines {
		if l.AttractionID == attractionID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return c.persist()
		}
	}

	return nil
}

// SetTicketCount updates one category's count, clamping negatives to zero.
// Unknown lines and unknown categories are a no-op.
func (c *Cart) SetTicketCount(attractionID string, category TicketCategory, count int) error {
	l := c.find(attractionID)
	if l == nil {
		return nil
	}

	if count < 0 {
		count = 0
	}

	switch category {
	case TicketAdult:
		l.Tickets.Adult = count
	case TicketChild:
		l.Tickets.Child = count
	case TicketSeniorCitizen:
		l.Tickets.SeniorCitizen = count
	case TicketForeignNationals:
		l.Tickets.ForeignNationals = count
	default:
		return nil
	}

	return c.persist()
}

// SetDate sets or overwrites the line's selected visit date.
func (c *Cart) SetDate(attractionID, date string) error {
	l := c.find(attractionID)
	if l == nil {
		return nil
	}

	l.SelectedDate = date

	return c.persist()
}

func (c *Cart) Clear() error {
	c.lines = nil
	return c.persist()
}

// Lines returns the cart content in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, *l)
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// OrderTotal is the sum of all line totals.
func (c *Cart) OrderTotal() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// TotalVisitors counts tickets across all lines and categories.
func (c *Cart) TotalVisitors() int {
	var total int
	for _, l := range c.lines {
		total += l.Tickets.Total()
	}
	return total
}

func (c *Cart) find(attractionID string) *Line {
	for _, l := range c.lines {
		if l.AttractionID == attractionID {
			return l
		}
	}
	return nil
}

func (c *Cart) persist() error {
	if c.lines == nil {
		if err := c.store.Save([]byte("[]")); err != nil {
			return fmt.Errorf("save cart: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(c.lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := c.store.Save(data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	return nil
}
