package handler

import (
	"time"

	"staffplan/internal/audit"
	"staffplan/internal/staffing/capacity"
	"staffplan/internal/staffing/models"
	"staffplan/internal/staffing/service"
)

// PersonResponse is a roster entry.
type PersonResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Gender       string    `json:"gender"`
	Preference   string    `json:"preference"`
	BondedWith   string    `json:"bonded_with,omitempty"`
	BondedWithID string    `json:"bonded_with_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// BondResponse is one bonded pair.
type BondResponse struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

type BondsResponse struct {
	Bonds []BondResponse `json:"bonds"`
}

// RosterResponse is the body of GET /roster.
type RosterResponse struct {
	People []PersonResponse  `json:"people"`
	Bonds  []BondResponse    `json:"bonds"`
	Stats  models.VenueStats `json:"stats"`
}

type VenueResponse struct {
	Name        string `json:"name"`
	MaleQuota   int    `json:"male_quota"`
	FemaleQuota int    `json:"female_quota"`
	TotalQuota  int    `json:"total_quota"`
}

// VenueSettingsResponse is the body of GET and PUT /venues.
type VenueSettingsResponse struct {
	A    VenueResponse `json:"A"`
	B    VenueResponse `json:"B"`
	Plan capacity.Plan `json:"plan"`
}

// VenueAssignmentResponse is one venue's members and counts.
type VenueAssignmentResponse struct {
	Name    string            `json:"name"`
	Members []PersonResponse  `json:"members"`
	Stats   models.VenueStats `json:"stats"`
}

// AssignmentResponse is the body of GET and POST /assignments.
type AssignmentResponse struct {
	Assigned   bool                    `json:"assigned"`
	Policy     string                  `json:"policy,omitempty"`
	RunAt      *time.Time              `json:"run_at,omitempty"`
	Moves      int                     `json:"moves"`
	A          VenueAssignmentResponse `json:"A"`
	B          VenueAssignmentResponse `json:"B"`
	Violations []models.Violation      `json:"violations"`
	Unassigned []PersonResponse        `json:"unassigned"`
}

// MoveResponse is the body of POST /assignments/moves.
type MoveResponse struct {
	Assignment     AssignmentResponse `json:"assignment"`
	BrokenBondWith string             `json:"broken_bond_with,omitempty"`
}

type ActivityResponse struct {
	Events []audit.Event `json:"events"`
}

// DetailedErrorResponse extends the error envelope with the figures behind
// a capacity or quota failure.
type DetailedErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Details          any    `json:"details,omitempty"`
}

type TotalMismatchDetails struct {
	Expected int `json:"expected"`
	Actual   int `json:"actual"`
}

type GenderMismatchDetails struct {
	RequiredMale   int `json:"required_male"`
	ActualMale     int `json:"actual_male"`
	RequiredFemale int `json:"required_female"`
	ActualFemale   int `json:"actual_female"`
}

type ViolationDetails struct {
	Violations []models.Violation `json:"violations"`
}

type CapacityDetails struct {
	Venue    string `json:"venue"`
	Capacity int    `json:"capacity"`
}

func toPersonResponse(p models.Person) PersonResponse {
	resp := PersonResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Gender:     string(p.Gender),
		Preference: string(p.Preference),
		BondedWith: p.BondedWithName,
		CreatedAt:  p.CreatedAt,
	}
	if !p.BondedWithID.IsNil() {
		resp.BondedWithID = p.BondedWithID.String()
	}
	return resp
}

func toPersonResponses(people []models.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(people))
	for _, p := range people {
		out = append(out, toPersonResponse(p))
	}
	return out
}

func toBondResponses(bonds models.Bonds) []BondResponse {
	out := make([]BondResponse, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, BondResponse{First: b.First.String(), Second: b.Second.String()})
	}
	return out
}

func toRosterResponse(r *service.Roster) RosterResponse {
	return RosterResponse{
		People: toPersonResponses(r.People),
		Bonds:  toBondResponses(r.Bonds),
		Stats:  r.Stats,
	}
}

func toVenueResponse(v models.VenueConfig) VenueResponse {
	return VenueResponse{
		Name:        v.Name,
		MaleQuota:   v.MaleQuota,
		FemaleQuota: v.FemaleQuota,
		TotalQuota:  v.TotalQuota(),
	}
}

func toVenueSettingsResponse(s *service.VenueSettings) VenueSettingsResponse {
	return VenueSettingsResponse{
		A:    toVenueResponse(s.Venues.A),
		B:    toVenueResponse(s.Venues.B),
		Plan: s.Plan,
	}
}

func toAssignmentResponse(v *service.AssignmentView) AssignmentResponse {
	resp := AssignmentResponse{
		Assigned:   v.Assigned,
		Policy:     string(v.Policy),
		Moves:      v.Moves,
		A:          VenueAssignmentResponse{Name: v.Venues.A.Name, Members: toPersonResponses(v.Assignment.A), Stats: v.StatsA},
		B:          VenueAssignmentResponse{Name: v.Venues.B.Name, Members: toPersonResponses(v.Assignment.B), Stats: v.StatsB},
		Violations: v.Violations,
		Unassigned: toPersonResponses(v.Unassigned),
	}
	if resp.Violations == nil {
		resp.Violations = []models.Violation{}
	}
	if !v.RunAt.IsZero() {
		runAt := v.RunAt
		resp.RunAt = &runAt
	}
	return resp
}

func toMoveResponse(r *service.MoveResult) MoveResponse {
	resp := MoveResponse{Assignment: toAssignmentResponse(r.View)}
	if r.BrokenBondWith != nil {
		resp.BrokenBondWith = r.BrokenBondWith.String()
	}
	return resp
}
