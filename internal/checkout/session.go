// Package checkout carries the state a visitor accumulates between picking a
// city and paying: the selected city and per-visitor details. It replaces
// ambient shared storage with an explicit object that callers pass around.
package checkout

import (
	"encoding/json"
	"fmt"

	"github.com/velmir0/TourBooker/internal/domain"
)

// Storage matches cart.Storage; any client-state store works here.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

type Visitor struct {
	Name        string `json:"name"`
	Age         string `json:"age"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

func (v Visitor) Complete() bool {
	return v.Name != "" && v.Age != "" && v.Gender != "" && v.Nationality != ""
}

type sessionState struct {
	SelectedCity *domain.City `json:"selectedCity,omitempty"`
	Visitors     []Visitor    `json:"visitors,omitempty"`
}

type Session struct {
	store Storage
	state sessionState
}

// NewSession rehydrates saved checkout state; malformed state resets to
// empty silently.
func NewSession(store Storage) *Session {
	s := &Session{store: store}

	data, err := store.Load()
	if err != nil || len(data) == 0 {
		return s
	}

	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return s
	}
	s.state = state

	return s
}

func (s *Session) SelectedCity() *domain.City {
	return s.state.SelectedCity
}

func (s *Session) SelectCity(city *domain.City) error {
	s.state.SelectedCity = city
	return s.persist()
}

func (s *Session) Visitors() []Visitor {
	return append([]Visitor(nil), s.state.Visitors...)
}

// SetVisitors stores per-visitor details captured during checkout. Every
// visitor must be fully filled in.
func (s *Session) SetVisitors(visitors []Visitor) error {
	for i, v := range visitors {
		if !v.Complete() {
			return fmt.Errorf("%w: visitor %d details are incomplete", domain.ErrValidation, i+1)
		}
	}

	s.state.Visitors = visitors

	return s.persist()
}

func (s *Session) Clear() error {
	s.state = sessionState{}
	return s.persist()
}

func (s *Session) persist() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal checkout session: %w", err)
	}
	if err := s.store.Save(data); err != nil {
		return fmt.Errorf("save checkout session: %w", err)
	}

	return nil
}
