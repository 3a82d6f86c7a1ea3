package models

import (
	"bytes"

	id "staffplan/pkg/domain"
)

// Bond is an unordered pair of people who must share a venue. First is the
// member that appears earlier in resolution order; equality ignores order.
type Bond struct {
	First  id.PersonID `json:"first"`
	Second id.PersonID `json:"second"`
}

// Equal compares bonds as unordered pairs.
func (b Bond) Equal(other Bond) bool {
	return (b.First == other.First && b.Second == other.Second) ||
		(b.First == other.Second && b.Second == other.First)
}

// Has reports whether personID is a member of the bond.
func (b Bond) Has(personID id.PersonID) bool {
	return b.First == personID || b.Second == personID
}

// Partner returns the other member; ok is false when personID is not in b.
func (b Bond) Partner(personID id.PersonID) (id.PersonID, bool) {
	switch personID {
	case b.First:
		return b.Second, true
	case b.Second:
		return b.First, true
	default:
		return id.PersonID{}, false
	}
}

// Canonical returns the bond with members in byte order, for stable comparison.
func (b Bond) Canonical() Bond {
	if bytes.Compare(b.First[:], b.Second[:]) > 0 {
		return Bond{First: b.Second, Second: b.First}
	}
	return b
}

// Bonds is an ordered bond set as produced by the resolver.
type Bonds []Bond

// PartnerOf returns personID's bonded partner, if any.
func (bs Bonds) PartnerOf(personID id.PersonID) (id.PersonID, bool) {
	for _, b := range bs {
		if p, ok := b.Partner(personID); ok {
			return p, true
		}
	}
	return id.PersonID{}, false
}

// Members returns the set of bonded people.
func (bs Bonds) Members() map[id.PersonID]struct{} {
	members := make(map[id.PersonID]struct{}, len(bs)*2)
	for _, b := range bs {
		members[b.First] = struct{}{}
		members[b.Second] = struct{}{}
	}
	return members
}
