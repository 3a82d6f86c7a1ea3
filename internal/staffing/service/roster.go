package service

import (
	"context"
	"fmt"
	"time"

	"staffplan/internal/audit"
	"staffplan/internal/staffing/allocation"
	"staffplan/internal/staffing/bonding"
	"staffplan/internal/staffing/models"
	"staffplan/internal/staffing/store"
	id "staffplan/pkg/domain"
	dErrors "staffplan/pkg/domain-errors"
	"staffplan/pkg/platform/sentinel"
	"staffplan/pkg/requestcontext"
)

// NewPersonInput carries the fields of a roster entry as received.
type NewPersonInput struct {
	Name       string
	Gender     models.Gender
	Preference models.Preference
	BondedWith string
}

// AddPerson appends a person to the roster, links their partner reference
// and recomputes bonds.
func (s *Service) AddPerson(ctx context.Context, in NewPersonInput) (_ *models.Person, err error) {
	ctx, span := s.startSpan(ctx, "AddPerson")
	defer func() { endSpan(span, err) }()

	var added models.Person
	var bondCount, rosterSize int
	err = s.store.Execute(ctx, func(st *store.State) error {
		p, err := addToRoster(st, in, requestcontext.Now(ctx))
		if err != nil {
			return err
		}
		added = p
		bondCount, rosterSize = len(st.Bonds), len(st.Roster)
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	s.metrics.SetRoster(rosterSize, bondCount)
	s.logAudit(ctx, audit.ActionPersonAdded, added.Name, added.Label(),
		"person_id", added.ID.String(),
		"bonded", !added.BondedWithID.IsNil(),
	)
	return &added, nil
}

// addToRoster validates and links a new person inside an Execute.
func addToRoster(st *store.State, in NewPersonInput, now time.Time) (models.Person, error) {
	p, err := models.NewPerson(id.NewPersonID(), in.Name, in.Gender, in.Preference, in.BondedWith, now)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return models.Person{}, dErrors.New(dErrors.CodeValidation, err.Error())
		}
		return models.Person{}, err
	}
	newcomer, linked := bonding.Link(st.Roster, *p)
	for _, i := range linked {
		st.Roster[i].BondedWithID = newcomer.ID
	}
	st.Roster = append(st.Roster, newcomer)
	st.Bonds = bonding.Resolve(st.Roster)
	return newcomer, nil
}

// RemovePerson drops a person from the roster and from the current
// assignment, then recomputes bonds.
func (s *Service) RemovePerson(ctx context.Context, personID id.PersonID) (err error) {
	ctx, span := s.startSpan(ctx, "RemovePerson")
	defer func() { endSpan(span, err) }()

	var removed models.Person
	var bondCount, rosterSize int
	err = s.store.Execute(ctx, func(st *store.State) error {
		i, ok := st.FindPerson(personID)
		if !ok {
			return sentinel.ErrNotFound
		}
		removed = st.Roster[i]
		st.Roster = append(st.Roster[:i], st.Roster[i+1:]...)
		bonding.Unlink(st.Roster, personID)
		st.Bonds = bonding.Resolve(st.Roster)
		if st.Assignment != nil {
			st.Assignment.Assignment = st.Assignment.Assignment.Without(personID)
			st.Assignment.Violations = allocation.Audit(st.Assignment.Assignment, st.Venues, st.Bonds)
		}
		bondCount, rosterSize = len(st.Bonds), len(st.Roster)
		return nil
	})
	if err != nil {
		return translate(err)
	}

	s.metrics.SetRoster(rosterSize, bondCount)
	s.logAudit(ctx, audit.ActionPersonRemoved, removed.Name, removed.Label(),
		"person_id", personID.String(),
	)
	return nil
}

// ListRoster returns the roster in entry order.
func (s *Service) ListRoster(ctx context.Context) (*Roster, error) {
	st, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return &Roster{People: st.Roster, Bonds: st.Bonds, Stats: models.StatsFor(st.Roster)}, nil
}

// GetPerson returns one roster entry.
func (s *Service) GetPerson(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	p, err := s.store.FindPerson(ctx, personID)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// Bonds returns the resolved bond set.
func (s *Service) Bonds(ctx context.Context) (models.Bonds, error) {
	st, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return st.Bonds, nil
}

// SeedRoster adds every seed entry in one step; a bad entry adds nobody.
func (s *Service) SeedRoster(ctx context.Context, people []store.SeedPerson) (added int, err error) {
	ctx, span := s.startSpan(ctx, "SeedRoster")
	defer func() { endSpan(span, err) }()

	if len(people) == 0 {
		return 0, nil
	}
	var bondCount, rosterSize int
	err = s.store.Execute(ctx, func(st *store.State) error {
		now := requestcontext.Now(ctx)
		for i, sp := range people {
			in, err := seedInput(sp)
			if err == nil {
				_, err = addToRoster(st, in, now)
			}
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("seed entry %d (%s)", i+1, sp.Name))
			}
		}
		bondCount, rosterSize = len(st.Bonds), len(st.Roster)
		return nil
	})
	if err != nil {
		return 0, translate(err)
	}

	s.metrics.SetRoster(rosterSize, bondCount)
	s.logAudit(ctx, audit.ActionRosterSeeded, "", fmt.Sprintf("%d people", len(people)),
		"count", len(people),
		"bonds", bondCount,
	)
	return len(people), nil
}

func seedInput(sp store.SeedPerson) (NewPersonInput, error) {
	gender, err := models.ParseGender(sp.Gender)
	if err != nil {
		return NewPersonInput{}, err
	}
	pref, err := models.ParsePreference(sp.Preference)
	if err != nil {
		return NewPersonInput{}, err
	}
	return NewPersonInput{Name: sp.Name, Gender: gender, Preference: pref, BondedWith: sp.BondedWith}, nil
}
