package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/repository"

	"github.com/google/uuid"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, full_name, email, position, position_type, status, cv_url, motivation_letter_url, details, application_date`

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	details, err := json.Marshal(a.Details)
	if err != nil {
		return err
	}
	query := `INSERT INTO applications (id, full_name, email, position, position_type, status, cv_url, motivation_letter_url, details, application_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING application_date`
	var appliedAt time.Time
	err = r.db.QueryRowContext(ctx, query,
		a.ID, a.FullName, a.Email, a.Position, a.Type, a.Status,
		a.CVURL, a.MotivationLetterURL, details, time.Now().UTC(),
	).Scan(&appliedAt)
	if err != nil {
		return err
	}
	a.AppliedAt = appliedAt.Format(dateLayout)
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRowContext(ctx, query, id))
}

func (r *applicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY application_date DESC`
	return r.queryApplications(ctx, query)
}

func (r *applicationRepository) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE status = $1 ORDER BY application_date DESC`
	return r.queryApplications(ctx, query, status)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	query := `UPDATE applications SET status = $1 WHERE id = $2 RETURNING ` + applicationColumns
	return scanApplication(r.db.QueryRowContext(ctx, query, status, id))
}

func (r *applicationRepository) queryApplications(ctx context.Context, query string, args ...interface{}) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	a := &domain.Application{}
	var details []byte
	var appliedAt time.Time
	err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.Position, &a.Type, &a.Status,
		&a.CVURL, &a.MotivationLetterURL, &details, &appliedAt)
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &a.Details); err != nil {
			return nil, err
		}
	}
	a.AppliedAt = appliedAt.Format(dateLayout)
	return a, nil
}
