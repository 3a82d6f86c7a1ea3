// Package allocation partitions a validated roster into the two venues.
//
// The algorithm is a deterministic four-pass greedy fill over the roster's
// original order:
//
//  1. bonded pairs whose members share a preference go to that venue
//  2. unbonded people with a preference go to their venue (A list, then B list)
//  3. remaining bonded pairs go to A, else B, wherever two slots remain
//  4. venue A is topped up to its male then female quota; everyone left goes to B
//
// The greedy passes cannot always meet every per-gender quota, so a post-pass
// audits the result and reports each violation. The quota policy decides
// whether such a result is returned or rejected.
package allocation

import (
	"fmt"

	"staffplan/internal/staffing/models"
	id "staffplan/pkg/domain"
)

// Input is everything one run needs. Roster order drives every pass.
type Input struct {
	Roster []models.Person
	Bonds  models.Bonds
	Venues models.Venues
	Policy models.QuotaPolicy
}

// Result is a complete assignment plus the quota audit.
type Result struct {
	Assignment models.Assignment
	Violations []models.Violation
}

// Balanced reports whether the audit found nothing.
func (r *Result) Balanced() bool {
	return len(r.Violations) == 0
}

// InfeasibleError is returned under the strict policy when the greedy
// result violates a quota or splits a bond.
type InfeasibleError struct {
	Violations []models.Violation
}

func (e *InfeasibleError) Error() string {
	if len(e.Violations) == 1 {
		return "assignment infeasible: " + e.Violations[0].String()
	}
	return fmt.Sprintf("assignment infeasible: %d quota violations, first: %s",
		len(e.Violations), e.Violations[0].String())
}

type venue struct {
	cfg     models.VenueConfig
	members []models.Person
	males   int
	females int
}

func (v *venue) room() int {
	return v.cfg.TotalQuota() - len(v.members)
}

func (v *venue) add(p models.Person) {
	v.members = append(v.members, p)
	if p.Gender == models.GenderMale {
		v.males++
	} else {
		v.females++
	}
}

type run struct {
	roster []models.Person
	index  map[id.PersonID]int
	bonds  models.Bonds
	bonded map[id.PersonID]struct{}
	placed []bool
	venues map[models.VenueKey]*venue
}

// Assign runs the four passes and the audit. It never mutates its input and
// always places every roster member exactly once.
func Assign(in Input) (*Result, error) {
	r := newRun(in)

	r.placePreferredPairs()
	r.placePreferredIndividuals(models.PreferenceA)
	r.placePreferredIndividuals(models.PreferenceB)
	r.placeRemainingPairs()
	r.fillByGender()

	asg := models.Assignment{
		A: r.venues[models.VenueA].members,
		B: r.venues[models.VenueB].members,
	}
	violations := Audit(asg, in.Venues, r.bonds)

	if in.Policy == models.QuotaPolicyStrict && len(violations) > 0 {
		return nil, &InfeasibleError{Violations: violations}
	}
	return &Result{Assignment: asg, Violations: violations}, nil
}

func newRun(in Input) *run {
	r := &run{
		roster: in.Roster,
		index:  make(map[id.PersonID]int, len(in.Roster)),
		placed: make([]bool, len(in.Roster)),
		venues: map[models.VenueKey]*venue{
			models.VenueA: {cfg: in.Venues.A, members: make([]models.Person, 0, in.Venues.A.TotalQuota())},
			models.VenueB: {cfg: in.Venues.B, members: make([]models.Person, 0, in.Venues.B.TotalQuota())},
		},
	}
	for i, p := range in.Roster {
		r.index[p.ID] = i
	}
	// Bonds naming someone outside the roster cannot be placed.
	for _, b := range in.Bonds {
		_, ok1 := r.index[b.First]
		_, ok2 := r.index[b.Second]
		if ok1 && ok2 {
			r.bonds = append(r.bonds, b)
		}
	}
	r.bonded = r.bonds.Members()
	return r
}

func (r *run) place(i int, key models.VenueKey) {
	r.venues[key].add(r.roster[i])
	r.placed[i] = true
}

func (r *run) pairIndices(b models.Bond) (int, int, bool) {
	i, j := r.index[b.First], r.index[b.Second]
	return i, j, !r.placed[i] && !r.placed[j]
}

// Pass 1: only checks total room, not per-gender room.
func (r *run) placePreferredPairs() {
	for _, b := range r.bonds {
		i, j, free := r.pairIndices(b)
		if !free {
			continue
		}
		if r.roster[i].Preference != r.roster[j].Preference {
			continue
		}
		key, ok := r.roster[i].Preference.Venue()
		if !ok || r.venues[key].room() < 2 {
			continue
		}
		r.place(i, key)
		r.place(j, key)
	}
}

// Pass 2: one preference list at a time, in roster order.
func (r *run) placePreferredIndividuals(pref models.Preference) {
	key, _ := pref.Venue()
	v := r.venues[key]
	for i, p := range r.roster {
		if r.placed[i] || p.Preference != pref {
			continue
		}
		if _, ok := r.bonded[p.ID]; ok {
			continue
		}
		if v.room() > 0 {
			r.place(i, key)
		}
	}
}

// Pass 3: pairs that fit in neither venue stay unplaced for pass 4.
func (r *run) placeRemainingPairs() {
	for _, b := range r.bonds {
		i, j, free := r.pairIndices(b)
		if !free {
			continue
		}
		for _, key := range []models.VenueKey{models.VenueA, models.VenueB} {
			if r.venues[key].room() >= 2 {
				r.place(i, key)
				r.place(j, key)
				break
			}
		}
	}
}

// Pass 4: top up A by gender, then send every leftover to B.
func (r *run) fillByGender() {
	var males, females []int
	for i, p := range r.roster {
		if r.placed[i] {
			continue
		}
		if p.Gender == models.GenderMale {
			males = append(males, i)
		} else {
			females = append(females, i)
		}
	}

	a := r.venues[models.VenueA]
	mi, fi := 0, 0
fill:
	for a.room() > 0 {
		needMales := a.cfg.MaleQuota - a.males
		needFemales := a.cfg.FemaleQuota - a.females
		switch {
		case needMales > 0 && mi < len(males):
			r.place(males[mi], models.VenueA)
			mi++
		case needFemales > 0 && fi < len(females):
			r.place(females[fi], models.VenueA)
			fi++
		default:
			break fill
		}
	}

	for i := range r.roster {
		if !r.placed[i] {
			r.place(i, models.VenueB)
		}
	}
}
