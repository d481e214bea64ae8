package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"vcg-backend/internal/cache"
	"vcg-backend/internal/domain"
	"vcg-backend/internal/logger"
	"vcg-backend/internal/repository"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
)

type applicationService struct {
	repo      repository.ApplicationRepository
	documents DocumentService
	email     EmailService
	snapshots *cache.SnapshotCache
}

func NewApplicationService(repo repository.ApplicationRepository, documents DocumentService, email EmailService, snapshots *cache.SnapshotCache) ApplicationService {
	return &applicationService{
		repo:      repo,
		documents: documents,
		email:     email,
		snapshots: snapshots,
	}
}

// Submit runs the whole pipeline: field and document validation, both
// document uploads, then the record insert. A submission that fails
// validation produces no storage traffic at all; a failed second upload
// deletes the first object so storage holds no orphans.
func (s *applicationService) Submit(ctx context.Context, sub *ApplicationSubmission) (*domain.Application, error) {
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}
	// An omitted type means an internal volt role
	if sub.Type == "" {
		sub.Type = domain.PositionTypeVolt
	}

	// Both documents must pass every check before the first byte is stored
	if err := s.documents.Validate(DocumentKindCV, sub.CV); err != nil {
		return nil, err
	}
	if err := s.documents.Validate(DocumentKindMotivationLetter, sub.MotivationLetter); err != nil {
		return nil, err
	}

	cv, err := s.documents.Upload(ctx, sub.Email, DocumentKindCV, sub.CV)
	if err != nil {
		return nil, err
	}

	letter, err := s.documents.Upload(ctx, sub.Email, DocumentKindMotivationLetter, sub.MotivationLetter)
	if err != nil {
		_ = s.documents.Remove(ctx, cv.Key)
		return nil, err
	}

	app := &domain.Application{
		FullName:            strings.TrimSpace(sub.FirstName + " " + sub.FamilyName),
		Email:               sub.Email,
		Position:            sub.Position,
		Type:                sub.Type,
		Status:              domain.ApplicationStatusPending,
		CVURL:               cv.URL,
		MotivationLetterURL: letter.URL,
		Details: domain.ApplicationDetails{
			FirstName:       sub.FirstName,
			FamilyName:      sub.FamilyName,
			BirthDate:       sub.BirthDate,
			DegreeProgram:   sub.DegreeProgram,
			YearOfStudy:     sub.YearOfStudy,
			PhoneNumber:     sub.PhoneNumber,
			Email:           sub.Email,
			LinkedInProfile: sub.LinkedInProfile,
		},
	}

	if err := s.repo.Create(ctx, app); err != nil {
		_ = s.documents.Remove(ctx, cv.Key)
		_ = s.documents.Remove(ctx, letter.Key)
		return nil, err
	}

	// Confirmation mail is best effort; the submission already succeeded
	if s.email != nil {
		if err := s.email.SendApplicationConfirmation(ctx, app.Email, app.FullName, app.Position); err != nil {
			logger.Warn("Failed to send application confirmation", "email", app.Email, "error", err)
		}
		if err := s.email.SendNewApplicationNotice(ctx, app.FullName, app.Position); err != nil {
			logger.Warn("Failed to send new application notice", "error", err)
		}
	}

	return app, nil
}

func (s *applicationService) List(ctx context.Context, filter ApplicationFilter) ([]domain.Application, bool, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return s.listFromSnapshot(ctx, filter, err)
	}
	if cacheErr := s.snapshots.Put(ctx, cache.KeyApplications, apps); cacheErr != nil {
		logger.Warn("Failed to refresh applications snapshot", "error", cacheErr)
	}
	return FilterApplications(apps, filter), false, nil
}

// UpdateStatus is the only mutation applications support. Re-setting the same
// status is a harmless no-op; the applicant is never notified.
func (s *applicationService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	app, err := s.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	return app, err
}

func (s *applicationService) listFromSnapshot(ctx context.Context, filter ApplicationFilter, cause error) ([]domain.Application, bool, error) {
	var apps []domain.Application
	if err := s.snapshots.Get(ctx, cache.KeyApplications, &apps); err != nil {
		return nil, false, cause
	}
	logger.Warn("Serving applications from fallback snapshot", "cause", cause)
	return FilterApplications(apps, filter), true, nil
}

func validateSubmission(sub *ApplicationSubmission) error {
	if sub.FirstName == "" {
		return &ValidationError{Field: "firstName", Message: "first name is required"}
	}
	if sub.FamilyName == "" {
		return &ValidationError{Field: "familyName", Message: "family name is required"}
	}
	if sub.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if sub.Position == "" {
		return &ValidationError{Field: "position", Message: "position is required"}
	}
	if sub.Type != "" && !sub.Type.Valid() {
		return &ValidationError{Field: "type", Message: "type must be volt or project"}
	}
	if sub.CV == nil {
		return &ValidationError{Field: "cv", Message: "CV is required"}
	}
	if sub.MotivationLetter == nil {
		return &ValidationError{Field: "motivationLetter", Message: "motivation letter is required"}
	}
	return nil
}
