package http

import (
	"net/http"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/service"

	"github.com/gorilla/mux"
)

type PositionHandler struct {
	positions service.PositionService
}

func NewPositionHandler(positions service.PositionService) *PositionHandler {
	return &PositionHandler{positions: positions}
}

// ListPublic serves the open positions the apply page shows. Supports the
// same search controls the dashboard has: ?query= and ?type=.
func (h *PositionHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	positions, degraded, err := h.positions.ListPublic(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	q := r.URL.Query()
	positions = service.FilterPositions(positions, q.Get("query"), domain.PositionType(q.Get("type")))
	respondJSON(w, http.StatusOK, listResponse{Data: positions, Degraded: degraded})
}

func (h *PositionHandler) List(w http.ResponseWriter, r *http.Request) {
	positions, degraded, err := h.positions.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	q := r.URL.Query()
	positions = service.FilterPositions(positions, q.Get("query"), domain.PositionType(q.Get("type")))
	respondJSON(w, http.StatusOK, listResponse{Data: positions, Degraded: degraded})
}

func (h *PositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Position
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.positions.Create(r.Context(), &p)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *PositionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd domain.PositionUpdate
	if err := decodeJSONPartial(r, &upd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.positions.Update(r.Context(), mux.Vars(r)["id"], &upd)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *PositionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.positions.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *PositionHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	updated, err := h.positions.ToggleActive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
