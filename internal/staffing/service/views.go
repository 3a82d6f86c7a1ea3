package service

import (
	"time"

	"staffplan/internal/staffing/capacity"
	"staffplan/internal/staffing/models"
	"staffplan/internal/staffing/store"
	id "staffplan/pkg/domain"
)

// Roster is the roster in entry order with its resolved bonds.
type Roster struct {
	People []models.Person
	Bonds  models.Bonds
	Stats  models.VenueStats
}

// VenueSettings is the venue configuration plus how the roster measures up.
type VenueSettings struct {
	Venues models.Venues
	Plan   capacity.Plan
}

// AssignmentView is the current assignment with per-venue stats. Assigned
// is false until the first successful run.
type AssignmentView struct {
	Assigned   bool
	Venues     models.Venues
	Assignment models.Assignment
	StatsA     models.VenueStats
	StatsB     models.VenueStats
	Violations []models.Violation
	Policy     models.QuotaPolicy
	RunAt      time.Time
	Moves      int
	Unassigned []models.Person
}

// MoveResult is the assignment after a manual move. BrokenBondWith is set
// when the move separated the person from their bonded partner.
type MoveResult struct {
	View           *AssignmentView
	BrokenBondWith *id.PersonID
}

func newAssignmentView(st store.State) *AssignmentView {
	rec := st.Assignment
	if rec == nil {
		return &AssignmentView{
			Venues:     st.Venues,
			Assignment: models.Assignment{A: []models.Person{}, B: []models.Person{}},
			Violations: []models.Violation{},
			Unassigned: append([]models.Person{}, st.Roster...),
		}
	}
	v := &AssignmentView{
		Assigned:   true,
		Venues:     st.Venues,
		Assignment: rec.Assignment,
		StatsA:     models.StatsFor(rec.Assignment.A),
		StatsB:     models.StatsFor(rec.Assignment.B),
		Violations: rec.Violations,
		Policy:     rec.Policy,
		RunAt:      rec.RunAt,
		Moves:      rec.Moves,
		Unassigned: []models.Person{},
	}
	for _, p := range st.Roster {
		if _, ok := rec.Assignment.Locate(p.ID); !ok {
			v.Unassigned = append(v.Unassigned, p)
		}
	}
	return v
}
