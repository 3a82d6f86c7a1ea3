// Package override relocates a single person between venues after an
// automatic assignment.
package override

import (
	"errors"
	"fmt"

	"staffplan/internal/staffing/models"
	id "staffplan/pkg/domain"
)

var (
	// ErrPersonNotInVenue is returned when the person is not in the source venue.
	ErrPersonNotInVenue = errors.New("person is not in the source venue")
	// ErrSameVenue is returned when source and destination are the same venue.
	ErrSameVenue = errors.New("source and destination venue are the same")
)

// CapacityExceededError is returned when the destination venue is full.
type CapacityExceededError struct {
	Venue    models.VenueKey
	Name     string
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("venue %s (%s) is full: %d/%d", e.Venue, e.Name, e.Capacity, e.Capacity)
}

// Move returns a copy of asg with personID moved from one venue to the end of
// the other. Only the destination's total capacity is checked; bonds and
// gender quotas are not. asg is never modified.
func Move(asg models.Assignment, personID id.PersonID, from, to models.VenueKey, venues models.Venues) (models.Assignment, error) {
	if from == to {
		return asg, ErrSameVenue
	}

	target := venues.Get(to)
	if len(asg.Members(to)) >= target.TotalQuota() {
		return asg, &CapacityExceededError{Venue: to, Name: target.Name, Capacity: target.TotalQuota()}
	}

	source := asg.Members(from)
	pos := -1
	for i, p := range source {
		if p.ID == personID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return asg, ErrPersonNotInVenue
	}
	person := source[pos]

	remaining := make([]models.Person, 0, len(source)-1)
	remaining = append(remaining, source[:pos]...)
	remaining = append(remaining, source[pos+1:]...)
	moved := append(append([]models.Person(nil), asg.Members(to)...), person)

	if from == models.VenueA {
		return models.Assignment{A: remaining, B: moved}, nil
	}
	return models.Assignment{A: moved, B: remaining}, nil
}

// BreaksBond reports whether moving personID out of its venue separates it
// from its bonded partner in next.
func BreaksBond(next models.Assignment, personID id.PersonID, bonds models.Bonds) (id.PersonID, bool) {
	partner, ok := bonds.PartnerOf(personID)
	if !ok {
		return id.PersonID{}, false
	}
	mine, ok1 := next.Locate(personID)
	theirs, ok2 := next.Locate(partner)
	return partner, ok1 && ok2 && mine != theirs
}
