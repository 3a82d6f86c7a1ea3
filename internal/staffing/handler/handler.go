package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"staffplan/internal/audit"
	"staffplan/internal/staffing/allocation"
	"staffplan/internal/staffing/capacity"
	"staffplan/internal/staffing/export"
	"staffplan/internal/staffing/models"
	"staffplan/internal/staffing/override"
	"staffplan/internal/staffing/service"
	id "staffplan/pkg/domain"
	dErrors "staffplan/pkg/domain-errors"
	"staffplan/pkg/platform/httputil"
	"staffplan/pkg/requestcontext"
)

const defaultActivityLimit = 50

// Service defines the staffing operations exposed over HTTP.
type Service interface {
	AddPerson(ctx context.Context, in service.NewPersonInput) (*models.Person, error)
	RemovePerson(ctx context.Context, personID id.PersonID) error
	GetPerson(ctx context.Context, personID id.PersonID) (*models.Person, error)
	ListRoster(ctx context.Context) (*service.Roster, error)
	Bonds(ctx context.Context) (models.Bonds, error)
	Venues(ctx context.Context) (*service.VenueSettings, error)
	UpdateVenues(ctx context.Context, venues models.Venues) (*service.VenueSettings, error)
	RunAssignment(ctx context.Context) (*service.AssignmentView, error)
	Assignment(ctx context.Context) (*service.AssignmentView, error)
	MovePerson(ctx context.Context, personID id.PersonID, from, to models.VenueKey) (*service.MoveResult, error)
	Export(ctx context.Context, format export.Format) ([]byte, error)
	Activity(ctx context.Context, limit int) ([]audit.Event, error)
}

// Handler wires staffing endpoints to the staffing service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a staffing handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the staffing endpoints. Middlewares passed in guard the
// mutating routes only.
func (h *Handler) Register(r chi.Router, mutating ...func(http.Handler) http.Handler) {
	r.Get("/roster", h.HandleListRoster)
	r.Get("/roster/bonds", h.HandleListBonds)
	r.Get("/roster/{personID}", h.HandleGetPerson)
	r.Get("/venues", h.HandleGetVenues)
	r.Get("/assignments", h.HandleGetAssignment)
	r.Get("/assignments/export", h.HandleExport)
	r.Get("/activity", h.HandleActivity)

	r.Group(func(r chi.Router) {
		r.Use(mutating...)
		r.Post("/roster", h.HandleAddPerson)
		r.Delete("/roster/{personID}", h.HandleRemovePerson)
		r.Put("/venues", h.HandleUpdateVenues)
		r.Post("/assignments", h.HandleRunAssignment)
		r.Post("/assignments/moves", h.HandleMovePerson)
	})
}

// HandleAddPerson handles POST /roster.
func (h *Handler) HandleAddPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[AddPersonRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	person, err := h.service.AddPerson(ctx, req.Input())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add person",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toPersonResponse(*person))
}

// HandleRemovePerson handles DELETE /roster/{personID}.
func (h *Handler) HandleRemovePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	personID, err := id.ParsePersonID(chi.URLParam(r, "personID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid person id"))
		return
	}

	if err := h.service.RemovePerson(ctx, personID); err != nil {
		h.logger.WarnContext(ctx, "failed to remove person",
			"request_id", requestID,
			"person_id", personID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGetPerson handles GET /roster/{personID}.
func (h *Handler) HandleGetPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "personID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid person id"))
		return
	}

	person, err := h.service.GetPerson(r.Context(), personID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(*person))
}

// HandleListRoster handles GET /roster.
func (h *Handler) HandleListRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.service.ListRoster(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRosterResponse(roster))
}

// HandleListBonds handles GET /roster/bonds.
func (h *Handler) HandleListBonds(w http.ResponseWriter, r *http.Request) {
	bonds, err := h.service.Bonds(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, BondsResponse{Bonds: toBondResponses(bonds)})
}

// HandleGetVenues handles GET /venues.
func (h *Handler) HandleGetVenues(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Venues(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVenueSettingsResponse(settings))
}

// HandleUpdateVenues handles PUT /venues.
func (h *Handler) HandleUpdateVenues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpdateVenuesRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	settings, err := h.service.UpdateVenues(ctx, req.Venues())
	if err != nil {
		h.logger.WarnContext(ctx, "failed to update venues",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "venues updated",
		"request_id", requestID,
		"ready", settings.Plan.Ready,
	)
	httputil.WriteJSON(w, http.StatusOK, toVenueSettingsResponse(settings))
}

// HandleRunAssignment handles POST /assignments.
func (h *Handler) HandleRunAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	view, err := h.service.RunAssignment(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "assignment run failed",
			"request_id", requestID,
			"error", err,
		)
		writeStaffingError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "assignment run",
		"request_id", requestID,
		"venue_a", len(view.Assignment.A),
		"venue_b", len(view.Assignment.B),
		"violations", len(view.Violations),
	)
	httputil.WriteJSON(w, http.StatusOK, toAssignmentResponse(view))
}

// HandleGetAssignment handles GET /assignments.
func (h *Handler) HandleGetAssignment(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Assignment(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAssignmentResponse(view))
}

// HandleMovePerson handles POST /assignments/moves.
func (h *Handler) HandleMovePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[MoveRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.MovePerson(ctx, req.parsedPersonID, req.parsedFrom, req.parsedTo)
	if err != nil {
		h.logger.WarnContext(ctx, "manual move rejected",
			"request_id", requestID,
			"person_id", req.PersonID,
			"error", err,
		)
		writeStaffingError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toMoveResponse(result))
}

// HandleExport handles GET /assignments/export?format=json|yaml.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeBadRequest, "format must be json or yaml"))
		return
	}

	body, err := h.service.Export(ctx, format)
	if err != nil {
		h.logger.ErrorContext(ctx, "export failed",
			"request_id", requestcontext.RequestID(ctx),
			"format", string(format),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(format)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}

// HandleActivity handles GET /activity?limit=n.
func (h *Handler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	events, err := h.service.Activity(r.Context(), limit)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ActivityResponse{Events: events})
}

// writeStaffingError adds the exact figures behind capacity and quota
// failures to the standard error envelope.
func writeStaffingError(w http.ResponseWriter, err error) {
	de, ok := dErrors.As(err)
	if !ok {
		httputil.WriteError(w, err)
		return
	}

	var (
		total      *capacity.TotalMismatchError
		gender     *capacity.GenderMismatchError
		infeasible *allocation.InfeasibleError
		full       *override.CapacityExceededError
		details    any
	)
	switch {
	case errors.As(err, &total):
		details = TotalMismatchDetails{Expected: total.Expected, Actual: total.Actual}
	case errors.As(err, &gender):
		details = GenderMismatchDetails{
			RequiredMale:   gender.RequiredMale,
			ActualMale:     gender.ActualMale,
			RequiredFemale: gender.RequiredFemale,
			ActualFemale:   gender.ActualFemale,
		}
	case errors.As(err, &infeasible):
		details = ViolationDetails{Violations: infeasible.Violations}
	case errors.As(err, &full):
		details = CapacityDetails{Venue: string(full.Venue), Capacity: full.Capacity}
	default:
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, dErrors.ToHTTPStatus(de.Code), DetailedErrorResponse{
		Error:            string(de.Code),
		ErrorDescription: de.Message,
		Details:          details,
	})
}
