// Package service orchestrates the staffing workflow: roster changes, venue
// settings, automatic assignment, manual moves and export. It owns no state
// of its own; everything lives in the state store and every mutation is a
// single atomic Execute.
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"staffplan/internal/audit"
	"staffplan/internal/staffing/allocation"
	"staffplan/internal/staffing/capacity"
	"staffplan/internal/staffing/metrics"
	"staffplan/internal/staffing/models"
	"staffplan/internal/staffing/override"
	"staffplan/internal/staffing/store"
	id "staffplan/pkg/domain"
	dErrors "staffplan/pkg/domain-errors"
	"staffplan/pkg/platform/sentinel"
	"staffplan/pkg/requestcontext"
)

const tracerName = "staffplan/staffing"

// Store is the state block the service reads and mutates.
type Store interface {
	Snapshot(ctx context.Context) (store.State, error)
	FindPerson(ctx context.Context, personID id.PersonID) (*models.Person, error)
	Execute(ctx context.Context, fn func(st *store.State) error) error
}

// AuditPublisher records state changes for the activity trail.
type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
	Recent(ctx context.Context, limit int) ([]audit.Event, error)
}

// Service orchestrates roster, venue and assignment management.
type Service struct {
	store          Store
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	policy         models.QuotaPolicy
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

// WithPolicy selects how assignment runs treat quota violations.
func WithPolicy(policy models.QuotaPolicy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service.
func New(st Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: slog.Default(),
		policy: models.QuotaPolicyReport,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Policy is the quota policy applied to assignment runs.
func (s *Service) Policy() models.QuotaPolicy {
	return s.policy
}

func (s *Service) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "staffing."+name)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// translate maps core and store errors to domain error codes. The underlying
// error stays in the chain so callers can still errors.As the typed value.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var (
		total      *capacity.TotalMismatchError
		gender     *capacity.GenderMismatchError
		infeasible *allocation.InfeasibleError
		full       *override.CapacityExceededError
	)
	switch {
	case errors.As(err, &total):
		return dErrors.Wrap(err, dErrors.CodeTotalMismatch, total.Error())
	case errors.As(err, &gender):
		return dErrors.Wrap(err, dErrors.CodeGenderMismatch, gender.Error())
	case errors.As(err, &infeasible):
		return dErrors.Wrap(err, dErrors.CodeQuotaInfeasible, infeasible.Error())
	case errors.As(err, &full):
		return dErrors.Wrap(err, dErrors.CodeCapacityExceeded, full.Error())
	case errors.Is(err, override.ErrPersonNotInVenue):
		return dErrors.Wrap(err, dErrors.CodeNotFound, err.Error())
	case errors.Is(err, override.ErrSameVenue):
		return dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "person not found")
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "staffing operation failed")
}

func (s *Service) logAudit(ctx context.Context, action audit.Action, subject, detail string, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", string(action), "log_type", "audit")
	if subject != "" {
		args = append(args, "subject", subject)
	}
	s.logger.InfoContext(ctx, string(action), args...)
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Action:    action,
		Subject:   subject,
		Detail:    detail,
		RequestID: requestID,
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to record audit event",
			"event", string(action),
			"error", err,
		)
	}
}

// Activity returns the most recent audit events, newest first.
func (s *Service) Activity(ctx context.Context, limit int) ([]audit.Event, error) {
	if s.auditPublisher == nil {
		return []audit.Event{}, nil
	}
	events, err := s.auditPublisher.Recent(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load activity")
	}
	return events, nil
}
