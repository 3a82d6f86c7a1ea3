package allocation

import (
	"staffplan/internal/staffing/models"
)

// Audit lists every way asg departs from the venue quotas or splits a bond.
// Findings are ordered venue A then B, capacity before gender, then bonds in
// resolver order.
func Audit(asg models.Assignment, venues models.Venues, bonds models.Bonds) []models.Violation {
	violations := []models.Violation{}

	for _, key := range []models.VenueKey{models.VenueA, models.VenueB} {
		cfg := venues.Get(key)
		stats := models.StatsFor(asg.Members(key))

		if stats.Total > cfg.TotalQuota() {
			violations = append(violations, models.Violation{
				Kind:   models.ViolationVenueOverCapacity,
				Venue:  key,
				Limit:  cfg.TotalQuota(),
				Actual: stats.Total,
			})
		}
		for _, g := range []models.Gender{models.GenderMale, models.GenderFemale} {
			quota, actual := cfg.Quota(g), stats.Count(g)
			kind := models.ViolationKind("")
			switch {
			case actual > quota:
				kind = models.ViolationGenderOverQuota
			case actual < quota:
				kind = models.ViolationGenderUnderQuota
			default:
				continue
			}
			violations = append(violations, models.Violation{
				Kind:   kind,
				Venue:  key,
				Gender: g,
				Limit:  quota,
				Actual: actual,
			})
		}
	}

	for _, b := range bonds {
		first, ok1 := asg.Locate(b.First)
		second, ok2 := asg.Locate(b.Second)
		if ok1 && ok2 && first != second {
			violations = append(violations, models.SplitBond(b.First, b.Second))
		}
	}
	return violations
}
