// Package capacity validates a roster against the two venue quotas.
package capacity

import (
	"fmt"

	"staffplan/internal/staffing/models"
)

// TotalMismatchError reports a roster whose size differs from the combined
// venue capacity.
type TotalMismatchError struct {
	Expected int
	Actual   int
}

func (e *TotalMismatchError) Error() string {
	return fmt.Sprintf("roster has %d people, venues hold %d", e.Actual, e.Expected)
}

// GenderMismatchError reports per-gender counts that differ from the
// combined gender quotas.
type GenderMismatchError struct {
	RequiredMale   int
	ActualMale     int
	RequiredFemale int
	ActualFemale   int
}

func (e *GenderMismatchError) Error() string {
	return fmt.Sprintf("gender counts do not match quotas: need %d male and %d female, have %d male and %d female",
		e.RequiredMale, e.RequiredFemale, e.ActualMale, e.ActualFemale)
}

// Plan summarizes required versus actual head counts.
type Plan struct {
	RequiredTotal  int  `json:"required_total"`
	ActualTotal    int  `json:"actual_total"`
	RequiredMale   int  `json:"required_male"`
	ActualMale     int  `json:"actual_male"`
	RequiredFemale int  `json:"required_female"`
	ActualFemale   int  `json:"actual_female"`
	Ready          bool `json:"ready"`
}

// Summarize counts the roster against the venues without failing.
func Summarize(roster []models.Person, venues models.Venues) Plan {
	stats := models.StatsFor(roster)
	p := Plan{
		RequiredTotal:  venues.TotalQuota(),
		ActualTotal:    len(roster),
		RequiredMale:   venues.A.MaleQuota + venues.B.MaleQuota,
		ActualMale:     stats.Males,
		RequiredFemale: venues.A.FemaleQuota + venues.B.FemaleQuota,
		ActualFemale:   stats.Females,
	}
	p.Ready = p.RequiredTotal == p.ActualTotal &&
		p.RequiredMale == p.ActualMale &&
		p.RequiredFemale == p.ActualFemale
	return p
}

// ValidateTotals fails with *TotalMismatchError when the roster size differs
// from the combined capacity, then with *GenderMismatchError when either
// gender count differs from its combined quota. It never mutates its inputs.
func ValidateTotals(roster []models.Person, venues models.Venues) error {
	p := Summarize(roster, venues)
	if p.ActualTotal != p.RequiredTotal {
		return &TotalMismatchError{Expected: p.RequiredTotal, Actual: p.ActualTotal}
	}
	if p.ActualMale != p.RequiredMale || p.ActualFemale != p.RequiredFemale {
		return &GenderMismatchError{
			RequiredMale:   p.RequiredMale,
			ActualMale:     p.ActualMale,
			RequiredFemale: p.RequiredFemale,
			ActualFemale:   p.ActualFemale,
		}
	}
	return nil
}

// ValidateVenues checks both venue configurations.
func ValidateVenues(venues models.Venues) error {
	return venues.Validate()
}
