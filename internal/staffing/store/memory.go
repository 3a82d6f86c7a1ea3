// Package store holds the staffing state block: roster, bonds, venue
// configuration and the current assignment.
package store

import (
	"context"
	"sync"

	"staffplan/internal/staffing/models"
	id "staffplan/pkg/domain"
	"staffplan/pkg/platform/sentinel"
)

// State is one consistent view of everything the service manages.
// Assignment is nil until the first successful run.
type State struct {
	Roster     []models.Person
	Bonds      models.Bonds
	Venues     models.Venues
	Assignment *models.AssignmentRecord
}

// Clone deep-copies the state so callers never alias store memory.
func (s State) Clone() State {
	out := State{
		Roster: append([]models.Person(nil), s.Roster...),
		Bonds:  append(models.Bonds(nil), s.Bonds...),
		Venues: s.Venues,
	}
	if s.Assignment != nil {
		rec := *s.Assignment
		rec.Assignment = s.Assignment.Assignment.Clone()
		rec.Violations = append([]models.Violation(nil), s.Assignment.Violations...)
		out.Assignment = &rec
	}
	return out
}

// FindPerson returns the roster position of personID.
func (s State) FindPerson(personID id.PersonID) (int, bool) {
	for i, p := range s.Roster {
		if p.ID == personID {
			return i, true
		}
	}
	return -1, false
}

// InMemory is the single owner of the state block. Every mutation runs
// through Execute, which works on a copy and commits only on success.
type InMemory struct {
	mu    sync.RWMutex
	state State
}

// NewInMemory starts with an empty roster and the given venues.
func NewInMemory(venues models.Venues) *InMemory {
	return &InMemory{state: State{
		Roster: []models.Person{},
		Bonds:  models.Bonds{},
		Venues: venues,
	}}
}

// Snapshot returns a copy of the current state.
func (s *InMemory) Snapshot(_ context.Context) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), nil
}

// FindPerson returns a roster entry by ID.
func (s *InMemory) FindPerson(_ context.Context, personID id.PersonID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.state.FindPerson(personID)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	p := s.state.Roster[i]
	return &p, nil
}

// Execute applies fn to a copy of the state and commits the copy when fn
// returns nil. A failing fn leaves the stored state untouched.
func (s *InMemory) Execute(ctx context.Context, fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.state = next
	return nil
}
