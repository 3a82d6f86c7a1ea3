// Package staffing assembles the roster, venue and assignment feature.
package staffing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"staffplan/internal/audit"
	"staffplan/internal/staffing/handler"
	"staffplan/internal/staffing/metrics"
	"staffplan/internal/staffing/models"
	"staffplan/internal/staffing/service"
	"staffplan/internal/staffing/store"
)

// Service exposes roster, venue and assignment orchestration.
type Service = service.Service

// Handler wires HTTP endpoints to the staffing service.
type Handler = handler.Handler

// Config is what the feature needs from the service configuration.
type Config struct {
	Venues   models.Venues
	Policy   models.QuotaPolicy
	SeedPath string
}

// Module is the assembled feature.
type Module struct {
	Service *Service
	Handler *Handler
}

// NewModule builds the store, service and handler, then loads the seed
// roster when one is configured.
func NewModule(ctx context.Context, cfg Config, logger *slog.Logger, reg prometheus.Registerer) (*Module, error) {
	if err := cfg.Venues.Validate(); err != nil {
		return nil, fmt.Errorf("invalid venues: %w", err)
	}

	svc := service.New(store.NewInMemory(cfg.Venues),
		service.WithLogger(logger),
		service.WithMetrics(metrics.New(reg)),
		service.WithAuditPublisher(audit.NewPublisher(audit.NewInMemoryStore(audit.DefaultCapacity))),
		service.WithPolicy(cfg.Policy),
	)

	people, err := store.LoadSeed(cfg.SeedPath)
	if err != nil {
		return nil, err
	}
	if len(people) > 0 {
		n, err := svc.SeedRoster(ctx, people)
		if err != nil {
			return nil, fmt.Errorf("seed roster: %w", err)
		}
		logger.InfoContext(ctx, "roster seeded", "path", cfg.SeedPath, "people", n)
	}

	return &Module{Service: svc, Handler: handler.New(svc, logger)}, nil
}
