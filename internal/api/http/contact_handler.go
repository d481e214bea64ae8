package http

import (
	"net/http"

	"vcg-backend/internal/service"
)

type ContactHandler struct {
	contacts service.ContactService
}

func NewContactHandler(contacts service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.contacts.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, degraded, err := h.contacts.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Data: messages, Degraded: degraded})
}
