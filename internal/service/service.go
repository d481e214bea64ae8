package service

import (
	"context"
	"fmt"
	"io"

	"vcg-backend/internal/domain"
)

// ValidationError reports a client-side correctable problem with a submitted
// field. It is always raised before any network or storage call happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DocumentKind names the two document slots every application carries.
type DocumentKind string

const (
	DocumentKindCV               DocumentKind = "CV"
	DocumentKindMotivationLetter DocumentKind = "MotivationLetter"
)

// DocumentUpload is a user-selected file on its way into object storage.
type DocumentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredDocument is the result of a successful upload.
type StoredDocument struct {
	Key string
	URL string
}

// ApplicationSubmission carries everything the apply form collects.
type ApplicationSubmission struct {
	FirstName        string
	FamilyName       string
	Email            string
	PhoneNumber      string
	BirthDate        string
	DegreeProgram    string
	YearOfStudy      string
	LinkedInProfile  string
	Position         string
	Type             domain.PositionType
	CV               *DocumentUpload
	MotivationLetter *DocumentUpload
}

// ApplicationFilter mirrors the dashboard's search controls: case-insensitive
// substring on name/position plus equality on type and status.
type ApplicationFilter struct {
	Query  string
	Type   domain.PositionType
	Status domain.ApplicationStatus
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	// Session re-derives the ambient auth state: session identity plus the
	// server-side admin role check.
	Session(ctx context.Context, userID string) (*domain.Session, error)
}

type PositionService interface {
	// ListPublic returns active listings only. Degraded is true when the
	// result came from the fallback snapshot instead of the database.
	ListPublic(ctx context.Context) (positions []domain.Position, degraded bool, err error)
	List(ctx context.Context) (positions []domain.Position, degraded bool, err error)
	Get(ctx context.Context, id string) (*domain.Position, error)
	Create(ctx context.Context, p *domain.Position) (*domain.Position, error)
	Update(ctx context.Context, id string, upd *domain.PositionUpdate) (*domain.Position, error)
	Delete(ctx context.Context, id string) error
	// ToggleActive flips the active flag. Activating a position that was
	// never published stamps today's date as its published date, once.
	ToggleActive(ctx context.Context, id string) (*domain.Position, error)
}

type ApplicationService interface {
	Submit(ctx context.Context, sub *ApplicationSubmission) (*domain.Application, error)
	List(ctx context.Context, filter ApplicationFilter) (apps []domain.Application, degraded bool, err error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}

type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
	List(ctx context.Context) (messages []domain.ContactMessage, degraded bool, err error)
}

type DocumentService interface {
	// Validate checks the declared type, size ceiling, and PDF header
	// without touching storage. The submission pipeline runs it on every
	// document before the first upload starts.
	Validate(kind DocumentKind, doc *DocumentUpload) error
	// Upload validates the file and moves it into object storage, returning
	// the stored key and public URL.
	Upload(ctx context.Context, applicantEmail string, kind DocumentKind, doc *DocumentUpload) (*StoredDocument, error)
	// Remove is the compensating cleanup for aborted submissions.
	Remove(ctx context.Context, key string) error
}

type EmailService interface {
	SendApplicationConfirmation(ctx context.Context, to, fullName, position string) error
	SendNewApplicationNotice(ctx context.Context, fullName, position string) error
	SendPendingDigest(ctx context.Context, pending []domain.Application) error
}
