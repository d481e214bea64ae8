package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/service"

	"github.com/gorilla/mux"
)

type ApplicationHandler struct {
	apps           service.ApplicationService
	maxUploadBytes int64
}

func NewApplicationHandler(apps service.ApplicationService, maxUploadBytes int64) *ApplicationHandler {
	return &ApplicationHandler{
		apps:           apps,
		maxUploadBytes: maxUploadBytes,
	}
}

// Submit accepts the apply form as multipart/form-data with two file parts,
// "cv" and "motivationLetter". Everything is validated before any storage
// call; a rejected file means zero objects created.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	// Two documents plus form fields, with headroom for multipart framing
	r.Body = http.MaxBytesReader(w, r.Body, 2*h.maxUploadBytes+1<<20)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	cv, cvOpen, err := formDocument(r, "cv")
	if err != nil {
		respondError(w, http.StatusBadRequest, "cv file is required")
		return
	}
	defer cvOpen.Close()

	letter, letterOpen, err := formDocument(r, "motivationLetter")
	if err != nil {
		respondError(w, http.StatusBadRequest, "motivationLetter file is required")
		return
	}
	defer letterOpen.Close()

	sub := &service.ApplicationSubmission{
		FirstName:        r.FormValue("firstName"),
		FamilyName:       r.FormValue("familyName"),
		Email:            r.FormValue("email"),
		PhoneNumber:      r.FormValue("phoneNumber"),
		BirthDate:        r.FormValue("birthDate"),
		DegreeProgram:    r.FormValue("degreeProgram"),
		YearOfStudy:      r.FormValue("yearOfStudy"),
		LinkedInProfile:  r.FormValue("linkedinProfile"),
		Position:         r.FormValue("position"),
		Type:             domain.PositionType(r.FormValue("type")),
		CV:               cv,
		MotivationLetter: letter,
	}

	app, err := h.apps.Submit(r.Context(), sub)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ApplicationFilter{
		Query:  q.Get("query"),
		Type:   domain.PositionType(q.Get("type")),
		Status: domain.ApplicationStatus(q.Get("status")),
	}

	apps, degraded, err := h.apps.List(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Data: apps, Degraded: degraded})
}

type statusUpdateRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusUpdateRequest
	if err := decodeJSONPartial(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.apps.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

func formDocument(r *http.Request, field string) (*service.DocumentUpload, multipart.File, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	doc := &service.DocumentUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
	return doc, file, nil
}
