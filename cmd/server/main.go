package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"staffplan/internal/platform/config"
	"staffplan/internal/platform/httpserver"
	"staffplan/internal/platform/logger"
	"staffplan/internal/platform/metrics"
	"staffplan/internal/staffing"
	"staffplan/internal/staffing/models"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	configPath := flag.String("config", os.Getenv("STAFFPLAN_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "staffplan: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("staffplan stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	policy, err := models.ParseQuotaPolicy(cfg.Assignment.QuotaPolicy)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	module, err := staffing.NewModule(ctx, staffing.Config{
		Venues:   venuesFromConfig(cfg.Venues),
		Policy:   policy,
		SeedPath: cfg.Roster.SeedPath,
	}, log, reg)
	if err != nil {
		return err
	}

	if cfg.Server.AdminToken == "" {
		log.Warn("no admin token configured; mutating routes are open")
	}
	router := newRouter(module.Handler, metrics.New(reg), reg, cfg.Server.AdminToken, log)
	srv := httpserver.New(cfg.Server.Addr, router)

	log.Info("starting staffplan",
		"addr", cfg.Server.Addr,
		"quota_policy", string(policy),
		"venue_a", cfg.Venues.A.Name,
		"venue_b", cfg.Venues.B.Name,
	)
	return httpserver.Run(ctx, srv, cfg.Server.ShutdownTimeout, log)
}

func venuesFromConfig(v config.Venues) models.Venues {
	return models.Venues{
		A: models.VenueConfig{Name: v.A.Name, MaleQuota: v.A.Male, FemaleQuota: v.A.Female},
		B: models.VenueConfig{Name: v.B.Name, MaleQuota: v.B.Male, FemaleQuota: v.B.Female},
	}
}
