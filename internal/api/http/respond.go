package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"vcg-backend/internal/logger"
	"vcg-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// listResponse wraps collection reads so callers can tell a healthy empty
// list from one served out of the fallback snapshot.
type listResponse struct {
	Data     interface{} `json:"data"`
	Degraded bool        `json:"degraded"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps service-layer errors onto HTTP statuses following
// the taxonomy: validation 400, auth 401/403, missing 404, the rest 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Message, Field: vErr.Field})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPositionNotFound), errors.Is(err, service.ErrApplicationNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dest interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

// decodeJSONPartial tolerates unknown fields. Update endpoints use it so a
// client may echo back read-only attributes like id and createdAt from a
// previously fetched record.
func decodeJSONPartial(r *http.Request, dest interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dest)
}
