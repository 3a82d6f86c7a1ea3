package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"staffplan/internal/platform/metrics"
	"staffplan/internal/staffing"
	"staffplan/pkg/platform/httputil"
	"staffplan/pkg/platform/middleware/admin"
	request "staffplan/pkg/platform/middleware/request"
	"staffplan/pkg/platform/middleware/requesttime"
)

func newRouter(h *staffing.Handler, httpMetrics *metrics.Metrics, gatherer prometheus.Gatherer, adminToken string, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(request.AccessLog(log))
	r.Use(httpMetrics.Middleware)
	r.Use(request.Recover(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	h.Register(r, admin.RequireAdminToken(adminToken, log))
	return r
}
