package repository

import (
	"context"

	"vcg-backend/internal/domain"
)

type PositionRepository interface {
	Create(ctx context.Context, p *domain.Position) error
	GetByID(ctx context.Context, id string) (*domain.Position, error)
	List(ctx context.Context) ([]domain.Position, error)
	ListActive(ctx context.Context) ([]domain.Position, error)
	// Update applies the non-nil fields and returns the refreshed record.
	Update(ctx context.Context, id string, upd *domain.PositionUpdate) (*domain.Position, error)
	Delete(ctx context.Context, id string) error
	// DeactivateExpired flips active off for positions whose deadline has
	// passed and returns how many rows changed.
	DeactivateExpired(ctx context.Context) (int64, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
	// UpdateStatus is the only mutator applications have. It returns the
	// refreshed single record.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}

type ContactMessageRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
	List(ctx context.Context) ([]domain.ContactMessage, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// HasRole is the server-side role predicate gating admin actions.
	HasRole(ctx context.Context, userID, role string) (bool, error)
}
