// Package handler exposes the pending-deletion workflow over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"custodia/internal/deletion"
	"custodia/internal/platform/middleware"
	"custodia/internal/transport/http/shared"
	dErrors "custodia/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Service is the orchestrator surface the handler depends on.
type Service interface {
	Get(ctx context.Context, actor deletion.Actor, subjectID string) (*deletion.PendingDeletion, error)
	ListByStudy(ctx context.Context, actor deletion.Actor, studyName string) ([]*deletion.PendingDeletion, error)
	Create(ctx context.Context, actor deletion.Actor, req deletion.CreateRequest) (*deletion.PendingDeletion, error)
	Execute(ctx context.Context, actor deletion.Actor, subjectID string) (*deletion.PendingDeletion, error)
	Cancel(ctx context.Context, actor deletion.Actor, subjectID string) error
	PersonalData(ctx context.Context, actor deletion.Actor, subjectID string) (*deletion.PersonalData, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the workflow routes on an already-authenticated router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/pendingdeletions/{subjectID}", h.get)
	r.Post("/pendingdeletions", h.create)
	r.Put("/pendingdeletions/{subjectID}", h.execute)
	r.Delete("/pendingdeletions/{subjectID}", h.cancel)
	r.Get("/studies/{studyName}/pendingdeletions", h.listByStudy)
	r.Get("/personaldata/{subjectID}", h.personalData)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	pd, err := h.service.Get(r.Context(), actor, chi.URLParam(r, "subjectID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, pd)
}

func (h *Handler) listByStudy(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	listed, err := h.service.ListByStudy(r.Context(), actor, chi.URLParam(r, "studyName"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if listed == nil {
		listed = []*deletion.PendingDeletion{}
	}
	shared.WriteJSON(w, http.StatusOK, listed)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req deletion.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.SubjectID == "" || req.RequestedFor == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "subjectId and requestedFor are required"))
		return
	}

	// Both outcomes answer 200: the body tells them apart. A persisted
	// request carries a distinct requestedFor; the immediate-purge path
	// returns the executed record.
	pd, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, pd)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	pd, err := h.service.Execute(r.Context(), actor, chi.URLParam(r, "subjectID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, pd)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), actor, chi.URLParam(r, "subjectID")); err != nil {
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) personalData(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	data, err := h.service.PersonalData(r.Context(), actor, chi.URLParam(r, "subjectID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, data)
}

// actor extracts the authenticated caller. RequireAuth guarantees claims are
// present; a miss here means a wiring mistake, not a client error.
func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (deletion.Actor, bool) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		h.logger.ErrorContext(r.Context(), "request reached handler without claims",
			"path", r.URL.Path,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return deletion.Actor{}, false
	}
	return deletion.Actor{Email: claims.Email, Studies: claims.Studies, Role: claims.Role}, true
}
