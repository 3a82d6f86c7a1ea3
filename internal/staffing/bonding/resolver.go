// Package bonding derives mutual bond pairs from the roster's partner references.
package bonding

import (
	"strings"

	"golang.org/x/text/cases"

	"staffplan/internal/staffing/models"
	id "staffplan/pkg/domain"
)

// NormalizeName folds a display name for case-insensitive comparison.
func NormalizeName(name string) string {
	// Casers carry state; one per call keeps this safe across goroutines.
	return cases.Fold().String(strings.TrimSpace(name))
}

// NamesMatch compares two display names case-insensitively.
func NamesMatch(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// Resolve walks the roster in order and pairs each unprocessed person with
// their declared partner. A resolved BondedWithID wins; otherwise the first
// other unprocessed person whose name matches BondedWithName is taken.
// Unmatched references leave the person unbonded. Each person ends up in at
// most one bond, and two people naming each other yield exactly one bond.
func Resolve(roster []models.Person) models.Bonds {
	bonds := models.Bonds{}
	processed := make(map[id.PersonID]struct{}, len(roster))

	for i, person := range roster {
		if _, done := processed[person.ID]; done {
			continue
		}
		if !person.HasBondReference() {
			continue
		}
		j := findPartner(roster, i, processed)
		if j < 0 {
			continue
		}
		partner := roster[j]
		bonds = append(bonds, models.Bond{First: person.ID, Second: partner.ID})
		processed[person.ID] = struct{}{}
		processed[partner.ID] = struct{}{}
	}
	return bonds
}

func findPartner(roster []models.Person, self int, processed map[id.PersonID]struct{}) int {
	person := roster[self]
	available := func(j int) bool {
		if j == self || roster[j].ID == person.ID {
			return false
		}
		_, done := processed[roster[j].ID]
		return !done
	}

	if !person.BondedWithID.IsNil() {
		for j := range roster {
			if roster[j].ID == person.BondedWithID && available(j) {
				return j
			}
		}
	}
	if person.BondedWithName == "" {
		return -1
	}
	want := NormalizeName(person.BondedWithName)
	for j := range roster {
		if available(j) && NormalizeName(roster[j].Name) == want {
			return j
		}
	}
	return -1
}

// FirstNamed returns the index of the first roster member other than self
// whose name matches name case-insensitively, or -1.
func FirstNamed(roster []models.Person, name string, self id.PersonID) int {
	if strings.TrimSpace(name) == "" {
		return -1
	}
	for i, p := range roster {
		if p.ID != self && NamesMatch(p.Name, name) {
			return i
		}
	}
	return -1
}

// Link resolves a newcomer's name reference against the existing roster and
// back-links existing people whose unresolved reference names the newcomer.
// A reference that already matches someone on the roster is left alone, so
// a later namesake never takes over from an earlier one.
// It returns the newcomer with BondedWithID set (when found) and the indices
// of existing people whose BondedWithID now points at the newcomer.
func Link(roster []models.Person, newcomer models.Person) (models.Person, []int) {
	if newcomer.BondedWithID.IsNil() {
		if j := FirstNamed(roster, newcomer.BondedWithName, newcomer.ID); j >= 0 {
			newcomer.BondedWithID = roster[j].ID
		}
	}

	var linked []int
	for i, p := range roster {
		if p.ID == newcomer.ID || !p.BondedWithID.IsNil() || p.BondedWithName == "" {
			continue
		}
		if !NamesMatch(p.BondedWithName, newcomer.Name) {
			continue
		}
		if FirstNamed(roster, p.BondedWithName, p.ID) >= 0 {
			continue
		}
		linked = append(linked, i)
	}
	return newcomer, linked
}

// Unlink clears references to a departed person and re-pins each of them to
// the first remaining roster member with the referenced name, if any.
func Unlink(roster []models.Person, departed id.PersonID) {
	for i := range roster {
		if roster[i].BondedWithID != departed {
			continue
		}
		roster[i].BondedWithID = id.PersonID{}
		if j := FirstNamed(roster, roster[i].BondedWithName, roster[i].ID); j >= 0 {
			roster[i].BondedWithID = roster[j].ID
		}
	}
}
