// Package domain holds domain primitives shared across modules.
package domain

import (
	"github.com/google/uuid"

	dErrors "staffplan/pkg/domain-errors"
)

// PersonID identifies a roster entry. It is a distinct type so it cannot be
// confused with other uuid-backed identifiers at compile time.
type PersonID uuid.UUID

// NewPersonID returns a fresh random PersonID.
func NewPersonID() PersonID {
	return PersonID(uuid.New())
}

// ParsePersonID validates s as a non-nil UUID.
func ParsePersonID(s string) (PersonID, error) {
	u, err := parseUUID(s, "person_id")
	if err != nil {
		return PersonID{}, err
	}
	return PersonID(u), nil
}

func (id PersonID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether id is the zero value.
func (id PersonID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id PersonID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *PersonID) UnmarshalText(b []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(b); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid person_id")
	}
	*id = PersonID(u)
	return nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+field)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must not be nil")
	}
	return u, nil
}
