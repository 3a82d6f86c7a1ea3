package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staffplan/internal/audit"
	"staffplan/internal/staffing/allocation"
	"staffplan/internal/staffing/capacity"
	"staffplan/internal/staffing/export"
	"staffplan/internal/staffing/metrics"
	"staffplan/internal/staffing/models"
	"staffplan/internal/staffing/override"
	"staffplan/internal/staffing/store"
	id "staffplan/pkg/domain"
	dErrors "staffplan/pkg/domain-errors"
	"staffplan/pkg/requestcontext"
)

// Venues returns both venue configs and the capacity plan.
func (s *Service) Venues(ctx context.Context) (*VenueSettings, error) {
	st, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return &VenueSettings{Venues: st.Venues, Plan: capacity.Summarize(st.Roster, st.Venues)}, nil
}

// UpdateVenues replaces both venue configs. An existing assignment is kept
// but re-audited against the new quotas.
func (s *Service) UpdateVenues(ctx context.Context, venues models.Venues) (_ *VenueSettings, err error) {
	ctx, span := s.startSpan(ctx, "UpdateVenues")
	defer func() { endSpan(span, err) }()

	if err := capacity.ValidateVenues(venues); err != nil {
		return nil, translate(err)
	}

	var settings VenueSettings
	err = s.store.Execute(ctx, func(st *store.State) error {
		st.Venues = venues
		if st.Assignment != nil {
			st.Assignment.Violations = allocation.Audit(st.Assignment.Assignment, venues, st.Bonds)
		}
		settings = VenueSettings{Venues: venues, Plan: capacity.Summarize(st.Roster, venues)}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	s.logAudit(ctx, audit.ActionVenuesUpdated, "",
		fmt.Sprintf("A %d/%d, B %d/%d", venues.A.MaleQuota, venues.A.FemaleQuota, venues.B.MaleQuota, venues.B.FemaleQuota),
		"ready", settings.Plan.Ready,
	)
	return &settings, nil
}

// RunAssignment validates the roster totals and runs the engine. On any
// failure the previous assignment is left in place.
func (s *Service) RunAssignment(ctx context.Context) (_ *AssignmentView, err error) {
	ctx, span := s.startSpan(ctx, "RunAssignment")
	defer func() { endSpan(span, err) }()

	start := time.Now()
	var view *AssignmentView
	var violations []models.Violation
	balanced := true
	err = s.store.Execute(ctx, func(st *store.State) error {
		if err := capacity.ValidateTotals(st.Roster, st.Venues); err != nil {
			return err
		}
		result, err := allocation.Assign(allocation.Input{
			Roster: st.Roster,
			Bonds:  st.Bonds,
			Venues: st.Venues,
			Policy: s.policy,
		})
		if err != nil {
			return err
		}
		violations = result.Violations
		balanced = result.Balanced()
		st.Assignment = &models.AssignmentRecord{
			Assignment: result.Assignment,
			Violations: result.Violations,
			Policy:     s.policy,
			RunAt:      requestcontext.Now(ctx),
		}
		view = newAssignmentView(*st)
		return nil
	})
	if err != nil {
		var infeasible *allocation.InfeasibleError
		if errors.As(err, &infeasible) {
			violations = infeasible.Violations
		}
		err = translate(err)
		outcome := metrics.OutcomeRejected
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			outcome = metrics.OutcomeFailed
		}
		s.metrics.ObserveAssign(start, outcome, violations)
		s.logger.WarnContext(ctx, "assignment run rejected",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil, err
	}

	s.metrics.ObserveAssign(start, metrics.OutcomeSuccess, violations)
	if !balanced {
		s.logger.WarnContext(ctx, "assignment completed with quota violations",
			"request_id", requestcontext.RequestID(ctx),
			"violations", len(violations),
		)
	}
	s.logAudit(ctx, audit.ActionAssignmentRun, "",
		fmt.Sprintf("A %d, B %d, %d violations", len(view.Assignment.A), len(view.Assignment.B), len(violations)),
		"policy", string(s.policy),
	)
	return view, nil
}

// Assignment returns the current assignment. Before any run it is empty and
// Assigned is false.
func (s *Service) Assignment(ctx context.Context) (*AssignmentView, error) {
	st, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, translate(err)
	}
	return newAssignmentView(st), nil
}

// MovePerson relocates one person between venues. Only the destination's
// capacity is enforced; a separated bond is logged and reported.
func (s *Service) MovePerson(ctx context.Context, personID id.PersonID, from, to models.VenueKey) (_ *MoveResult, err error) {
	ctx, span := s.startSpan(ctx, "MovePerson")
	defer func() { endSpan(span, err) }()

	result := &MoveResult{}
	var moved models.Person
	err = s.store.Execute(ctx, func(st *store.State) error {
		if st.Assignment == nil {
			return dErrors.New(dErrors.CodeConflict, "no assignment to adjust; run an assignment first")
		}
		next, err := override.Move(st.Assignment.Assignment, personID, from, to, st.Venues)
		if err != nil {
			return err
		}
		if partner, broken := override.BreaksBond(next, personID, st.Bonds); broken {
			result.BrokenBondWith = &partner
		}
		if i, ok := st.FindPerson(personID); ok {
			moved = st.Roster[i]
		}
		st.Assignment.Assignment = next
		st.Assignment.Violations = allocation.Audit(next, st.Venues, st.Bonds)
		st.Assignment.Moves++
		result.View = newAssignmentView(*st)
		return nil
	})
	if err != nil {
		s.metrics.IncrementMove(metrics.OutcomeFailed)
		return nil, translate(err)
	}

	s.metrics.IncrementMove(metrics.OutcomeSuccess)
	if result.BrokenBondWith != nil {
		s.logger.WarnContext(ctx, "manual move separated a bonded pair",
			"request_id", requestcontext.RequestID(ctx),
			"person_id", personID.String(),
			"partner_id", result.BrokenBondWith.String(),
		)
	}
	s.logAudit(ctx, audit.ActionPersonMoved, moved.Name, fmt.Sprintf("%s -> %s", from, to),
		"person_id", personID.String(),
	)
	return result, nil
}

// Export renders the current assignment. Exporting before any run yields
// two empty sections.
func (s *Service) Export(ctx context.Context, format export.Format) (_ []byte, err error) {
	ctx, span := s.startSpan(ctx, "Export")
	defer func() { endSpan(span, err) }()

	st, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, translate(err)
	}
	var asg models.Assignment
	if st.Assignment != nil {
		asg = st.Assignment.Assignment
	}
	body, err := export.Render(export.Build(asg, st.Venues), format)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render export")
	}

	s.metrics.IncrementExport(string(format))
	s.logAudit(ctx, audit.ActionExportRendered, "", string(format),
		"people", asg.Len(),
	)
	return body, nil
}
