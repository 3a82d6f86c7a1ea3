package models

import (
	"strings"
	"unicode/utf8"

	dErrors "staffplan/pkg/domain-errors"
)

// VenueKey names one of the two venues.
type VenueKey string

const (
	VenueA VenueKey = "A"
	VenueB VenueKey = "B"
)

// ParseVenueKey accepts "a"/"b" in any case.
func ParseVenueKey(s string) (VenueKey, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return VenueA, nil
	case "B":
		return VenueB, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "venue must be A or B")
	}
}

// VenueConfig is one venue's display name and gender quotas.
type VenueConfig struct {
	Name        string `json:"name"`
	MaleQuota   int    `json:"male_quota"`
	FemaleQuota int    `json:"female_quota"`
}

// TotalQuota is the venue's capacity.
func (v VenueConfig) TotalQuota() int {
	return v.MaleQuota + v.FemaleQuota
}

// Quota returns the venue's quota for g.
func (v VenueConfig) Quota(g Gender) int {
	if g == GenderMale {
		return v.MaleQuota
	}
	return v.FemaleQuota
}

// Validate enforces a non-empty name and non-negative quotas.
func (v VenueConfig) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "venue name is required")
	}
	if utf8.RuneCountInString(v.Name) > maxNameLength {
		return dErrors.New(dErrors.CodeValidation, "venue name must be 64 characters or less")
	}
	if v.MaleQuota < 0 || v.FemaleQuota < 0 {
		return dErrors.New(dErrors.CodeValidation, "venue quotas must be non-negative")
	}
	return nil
}

// Venues holds the two venue configurations.
type Venues struct {
	A VenueConfig `json:"A"`
	B VenueConfig `json:"B"`
}

// DefaultVenues mirrors the stock 18/18 split.
func DefaultVenues() Venues {
	return Venues{
		A: VenueConfig{Name: "Venue A", MaleQuota: 9, FemaleQuota: 9},
		B: VenueConfig{Name: "Venue B", MaleQuota: 9, FemaleQuota: 9},
	}
}

// Get returns the config for key.
func (v Venues) Get(key VenueKey) VenueConfig {
	if key == VenueB {
		return v.B
	}
	return v.A
}

// TotalQuota is the combined capacity of both venues.
func (v Venues) TotalQuota() int {
	return v.A.TotalQuota() + v.B.TotalQuota()
}

// Validate checks both configs.
func (v Venues) Validate() error {
	if err := v.A.Validate(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "venue A")
	}
	if err := v.B.Validate(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "venue B")
	}
	return nil
}
