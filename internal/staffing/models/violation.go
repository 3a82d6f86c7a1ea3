package models

import (
	"fmt"

	id "staffplan/pkg/domain"
	dErrors "staffplan/pkg/domain-errors"
)

// QuotaPolicy decides what the engine does when its greedy passes cannot
// meet every quota.
type QuotaPolicy string

const (
	// QuotaPolicyReport accepts the result and lists the violations.
	QuotaPolicyReport QuotaPolicy = "report"
	// QuotaPolicyStrict rejects any result with violations.
	QuotaPolicyStrict QuotaPolicy = "strict"
)

// ParseQuotaPolicy maps "" to report.
func ParseQuotaPolicy(s string) (QuotaPolicy, error) {
	switch QuotaPolicy(s) {
	case "", QuotaPolicyReport:
		return QuotaPolicyReport, nil
	case QuotaPolicyStrict:
		return QuotaPolicyStrict, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown quota policy %q", s))
	}
}

// ViolationKind classifies a post-pass finding.
type ViolationKind string

const (
	ViolationGenderOverQuota   ViolationKind = "gender_over_quota"
	ViolationGenderUnderQuota  ViolationKind = "gender_under_quota"
	ViolationVenueOverCapacity ViolationKind = "venue_over_capacity"
	ViolationBondSplit         ViolationKind = "bond_split"
)

// Violation is one quota or bonding rule the assignment does not meet.
// Venue, Gender, Limit and Actual describe quota findings; Bond is set for
// bond_split.
type Violation struct {
	Kind   ViolationKind `json:"kind"`
	Venue  VenueKey      `json:"venue,omitempty"`
	Gender Gender        `json:"gender,omitempty"`
	Limit  int           `json:"limit"`
	Actual int           `json:"actual"`
	Bond   *Bond         `json:"bond,omitempty"`
}

func (v Violation) String() string {
	switch v.Kind {
	case ViolationBondSplit:
		if v.Bond != nil {
			return fmt.Sprintf("bond %s/%s split across venues", v.Bond.First, v.Bond.Second)
		}
		return "bond split across venues"
	case ViolationVenueOverCapacity:
		return fmt.Sprintf("venue %s holds %d, capacity %d", v.Venue, v.Actual, v.Limit)
	default:
		return fmt.Sprintf("venue %s has %d %s, quota %d", v.Venue, v.Actual, v.Gender, v.Limit)
	}
}

// SplitBond builds a bond_split violation.
func SplitBond(first, second id.PersonID) Violation {
	return Violation{Kind: ViolationBondSplit, Bond: &Bond{First: first, Second: second}}
}
