package handler

import (
	"strings"
	"unicode/utf8"

	"staffplan/internal/staffing/models"
	"staffplan/internal/staffing/service"
	id "staffplan/pkg/domain"
	dErrors "staffplan/pkg/domain-errors"
)

const maxFieldLength = 64

// AddPersonRequest is the body of POST /roster.
type AddPersonRequest struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Preference string `json:"preference"`
	BondedWith string `json:"bonded_with"`

	parsedGender     models.Gender
	parsedPreference models.Preference
}

func (r *AddPersonRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Preference = strings.TrimSpace(r.Preference)
	r.BondedWith = strings.TrimSpace(r.BondedWith)
}

// Validate implements httputil.Validatable.
func (r *AddPersonRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if utf8.RuneCountInString(r.Name) > maxFieldLength || utf8.RuneCountInString(r.BondedWith) > maxFieldLength {
		return dErrors.New(dErrors.CodeValidation, "name fields must be at most 64 characters")
	}
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	gender, err := models.ParseGender(r.Gender)
	if err != nil {
		return err
	}
	pref, err := models.ParsePreference(r.Preference)
	if err != nil {
		return err
	}
	r.parsedGender = gender
	r.parsedPreference = pref
	return nil
}

// Input converts the validated request for the service.
func (r *AddPersonRequest) Input() service.NewPersonInput {
	return service.NewPersonInput{
		Name:       r.Name,
		Gender:     r.parsedGender,
		Preference: r.parsedPreference,
		BondedWith: r.BondedWith,
	}
}

// VenueRequest is one venue's settings.
type VenueRequest struct {
	Name        string `json:"name"`
	MaleQuota   *int   `json:"male_quota"`
	FemaleQuota *int   `json:"female_quota"`
}

func (v VenueRequest) config() models.VenueConfig {
	return models.VenueConfig{Name: v.Name, MaleQuota: *v.MaleQuota, FemaleQuota: *v.FemaleQuota}
}

func (v VenueRequest) validate(label string) error {
	if v.MaleQuota == nil || v.FemaleQuota == nil {
		return dErrors.New(dErrors.CodeValidation, label+": male_quota and female_quota are required")
	}
	if err := v.config().Validate(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, label)
	}
	return nil
}

// UpdateVenuesRequest is the body of PUT /venues. Both venues are replaced.
type UpdateVenuesRequest struct {
	A VenueRequest `json:"A"`
	B VenueRequest `json:"B"`
}

func (r *UpdateVenuesRequest) Normalize() {
	r.A.Name = strings.TrimSpace(r.A.Name)
	r.B.Name = strings.TrimSpace(r.B.Name)
}

// Validate implements httputil.Validatable.
func (r *UpdateVenuesRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := r.A.validate("venue A"); err != nil {
		return err
	}
	return r.B.validate("venue B")
}

// Venues converts the validated request.
func (r *UpdateVenuesRequest) Venues() models.Venues {
	return models.Venues{A: r.A.config(), B: r.B.config()}
}

// MoveRequest is the body of POST /assignments/moves.
type MoveRequest struct {
	PersonID string `json:"person_id"`
	From     string `json:"from"`
	To       string `json:"to"`

	parsedPersonID id.PersonID
	parsedFrom     models.VenueKey
	parsedTo       models.VenueKey
}

// Validate implements httputil.Validatable.
func (r *MoveRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	personID, err := id.ParsePersonID(strings.TrimSpace(r.PersonID))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "person_id must be a valid id")
	}
	from, err := models.ParseVenueKey(r.From)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "from")
	}
	to, err := models.ParseVenueKey(r.To)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "to")
	}
	r.parsedPersonID = personID
	r.parsedFrom = from
	r.parsedTo = to
	return nil
}
