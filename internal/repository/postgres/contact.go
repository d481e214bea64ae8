package postgres

import (
	"context"
	"database/sql"
	"time"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/repository"

	"github.com/google/uuid"
)

type contactMessageRepository struct {
	db *sql.DB
}

func NewContactMessageRepository(db *sql.DB) repository.ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	query := `INSERT INTO contact_messages (id, name, email, message, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, m.ID, m.Name, m.Email, m.Message, time.Now().UTC()).Scan(&createdAt)
	if err != nil {
		return err
	}
	m.CreatedAt = createdAt.Format(dateLayout)
	return nil
}

func (r *contactMessageRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	query := `SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = createdAt.Format(dateLayout)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
