package models

import (
	"strings"
	"time"
	"unicode/utf8"

	id "staffplan/pkg/domain"
	dErrors "staffplan/pkg/domain-errors"
)

const maxNameLength = 64

// Gender is the binary gender used for per-venue quotas.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender accepts the canonical names plus the short and CJK forms used
// by the legacy staff lists.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "男":
		return GenderMale, nil
	case "female", "f", "女":
		return GenderFemale, nil
	case "":
		return "", dErrors.New(dErrors.CodeValidation, "gender is required")
	default:
		return "", dErrors.New(dErrors.CodeValidation, "gender must be male or female")
	}
}

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Preference is a person's declared venue wish.
type Preference string

const (
	PreferenceNone Preference = "none"
	PreferenceA    Preference = "A"
	PreferenceB    Preference = "B"
)

// ParsePreference maps "", "none", "a", "b" (any case) to a Preference.
func ParsePreference(s string) (Preference, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return PreferenceNone, nil
	case "A":
		return PreferenceA, nil
	case "B":
		return PreferenceB, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "preference must be none, A or B")
	}
}

// Venue returns the venue a preference points at; ok is false for none.
func (p Preference) Venue() (VenueKey, bool) {
	switch p {
	case PreferenceA:
		return VenueA, true
	case PreferenceB:
		return VenueB, true
	default:
		return "", false
	}
}

// Person is one roster entry.
//
// BondedWithName is the free-text partner reference captured at entry time.
// BondedWithID is the partner it resolved to, if any; the resolver prefers it
// over the name.
type Person struct {
	ID             id.PersonID `json:"id"`
	Name           string      `json:"name"`
	Gender         Gender      `json:"gender"`
	Preference     Preference  `json:"preference"`
	BondedWithName string      `json:"bonded_with,omitempty"`
	BondedWithID   id.PersonID `json:"bonded_with_id,omitzero"`
	CreatedAt      time.Time   `json:"created_at"`
}

// NewPerson validates and builds a Person.
func NewPerson(personID id.PersonID, name string, gender Gender, pref Preference, bondedWith string, now time.Time) (*Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "name must be 64 characters or less")
	}
	if !gender.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "gender must be male or female")
	}
	if pref == "" {
		pref = PreferenceNone
	}
	bondedWith = strings.TrimSpace(bondedWith)
	if utf8.RuneCountInString(bondedWith) > maxNameLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "bonded_with must be 64 characters or less")
	}
	return &Person{
		ID:             personID,
		Name:           name,
		Gender:         gender,
		Preference:     pref,
		BondedWithName: bondedWith,
		CreatedAt:      now,
	}, nil
}

// HasBondReference reports whether the person declared a partner.
func (p Person) HasBondReference() bool {
	return !p.BondedWithID.IsNil() || p.BondedWithName != ""
}

// Label renders the person the way exports and logs show them.
func (p Person) Label() string {
	return p.Name + " (" + string(p.Gender) + ")"
}
