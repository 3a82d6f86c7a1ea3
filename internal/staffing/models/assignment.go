package models

import (
	"time"

	id "staffplan/pkg/domain"
)

// Assignment is the current split of the roster into the two venues.
// Both sequences are ordered by placement.
type Assignment struct {
	A []Person `json:"A"`
	B []Person `json:"B"`
}

// Members returns the people placed in venue key.
func (a Assignment) Members(key VenueKey) []Person {
	if key == VenueB {
		return a.B
	}
	return a.A
}

// Len is the number of placed people across both venues.
func (a Assignment) Len() int {
	return len(a.A) + len(a.B)
}

// Locate finds which venue holds personID.
func (a Assignment) Locate(personID id.PersonID) (VenueKey, bool) {
	for _, p := range a.A {
		if p.ID == personID {
			return VenueA, true
		}
	}
	for _, p := range a.B {
		if p.ID == personID {
			return VenueB, true
		}
	}
	return "", false
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (a Assignment) Clone() Assignment {
	return Assignment{
		A: append([]Person(nil), a.A...),
		B: append([]Person(nil), a.B...),
	}
}

// Without returns a copy of a with personID removed from both venues.
func (a Assignment) Without(personID id.PersonID) Assignment {
	return Assignment{
		A: removePerson(a.A, personID),
		B: removePerson(a.B, personID),
	}
}

func removePerson(people []Person, personID id.PersonID) []Person {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if p.ID != personID {
			out = append(out, p)
		}
	}
	return out
}

// VenueStats counts a venue's members by gender.
type VenueStats struct {
	Males   int `json:"males"`
	Females int `json:"females"`
	Total   int `json:"total"`
}

// StatsFor counts people by gender.
func StatsFor(people []Person) VenueStats {
	var s VenueStats
	for _, p := range people {
		switch p.Gender {
		case GenderMale:
			s.Males++
		case GenderFemale:
			s.Females++
		}
	}
	s.Total = len(people)
	return s
}

// Count returns the number of people of gender g in the stats.
func (s VenueStats) Count(g Gender) int {
	if g == GenderMale {
		return s.Males
	}
	return s.Females
}

// AssignmentRecord is the stored outcome of the last run plus later moves.
type AssignmentRecord struct {
	Assignment Assignment  `json:"assignment"`
	Violations []Violation `json:"violations"`
	Policy     QuotaPolicy `json:"policy"`
	RunAt      time.Time   `json:"run_at"`
	Moves      int         `json:"moves"`
}
