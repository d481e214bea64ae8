package postgres

import (
	"context"
	"database/sql"
	"time"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	query := `INSERT INTO users (id, email, name, password_hash, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, u.ID, u.Email, u.Name, u.PasswordHash, time.Now().UTC()).Scan(&createdAt)
	if err != nil {
		return err
	}
	u.CreatedAt = createdAt.Format(dateLayout)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, COALESCE(name, ''), password_hash, created_at FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, COALESCE(name, ''), password_hash, created_at FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`
	if err := r.db.QueryRowContext(ctx, query, userID, role).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *userRepository) scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var createdAt time.Time
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &createdAt); err != nil {
		return nil, err
	}
	u.CreatedAt = createdAt.Format(dateLayout)
	return u, nil
}
