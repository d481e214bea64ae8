package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const dateLayout = "2006-01-02"

type positionRepository struct {
	db *sql.DB
}

func NewPositionRepository(db *sql.DB) repository.PositionRepository {
	return &positionRepository{db: db}
}

const positionColumns = `id, title, description, type, requirements, preferred_majors, COALESCE(company_name, ''), COALESCE(project_description, ''), active, published_date, deadline, created_at`

func (r *positionRepository) Create(ctx context.Context, p *domain.Position) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `INSERT INTO positions (id, title, description, type, requirements, preferred_majors, company_name, project_description, active, published_date, deadline, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Description, p.Type, pq.Array(p.Requirements), pq.Array(p.PreferredMajors),
		nullString(p.CompanyName), nullString(p.ProjectDescription), p.Active,
		nullDate(p.PublishedDate), nullDate(p.Deadline), time.Now().UTC(),
	).Scan(&createdAt)
	if err != nil {
		return err
	}
	p.CreatedAt = createdAt.Format(dateLayout)
	return nil
}

func (r *positionRepository) GetByID(ctx context.Context, id string) (*domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = $1`
	return scanPosition(r.db.QueryRowContext(ctx, query, id))
}

func (r *positionRepository) List(ctx context.Context) ([]domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions ORDER BY created_at DESC`
	return r.queryPositions(ctx, query)
}

func (r *positionRepository) ListActive(ctx context.Context) ([]domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE active ORDER BY created_at DESC`
	return r.queryPositions(ctx, query)
}

func (r *positionRepository) Update(ctx context.Context, id string, upd *domain.PositionUpdate) (*domain.Position, error) {
	sets := []string{}
	args := []interface{}{}
	argIdx := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.Requirements != nil {
		add("requirements", pq.Array(upd.Requirements))
	}
	if upd.PreferredMajors != nil {
		add("preferred_majors", pq.Array(upd.PreferredMajors))
	}
	if upd.CompanyName != nil {
		add("company_name", nullString(*upd.CompanyName))
	}
	if upd.ProjectDescription != nil {
		add("project_description", nullString(*upd.ProjectDescription))
	}
	if upd.Active != nil {
		add("active", *upd.Active)
	}
	if upd.PublishedDate != nil {
		add("published_date", nullDate(upd.PublishedDate))
	}
	if upd.Deadline != nil {
		add("deadline", nullDate(upd.Deadline))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	query := "UPDATE positions SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + positionColumns
	args = append(args, id)

	return scanPosition(r.db.QueryRowContext(ctx, query, args...))
}

func (r *positionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *positionRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE positions SET active = false WHERE active AND deadline IS NOT NULL AND deadline < $1`,
		time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *positionRepository) queryPositions(ctx context.Context, query string, args ...interface{}) ([]domain.Position, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, *p)
	}
	return positions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPosition(row rowScanner) (*domain.Position, error) {
	p := &domain.Position{}
	var published, deadline sql.NullTime
	var createdAt time.Time
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Type,
		pq.Array(&p.Requirements), pq.Array(&p.PreferredMajors),
		&p.CompanyName, &p.ProjectDescription, &p.Active,
		&published, &deadline, &createdAt)
	if err != nil {
		return nil, err
	}
	p.PublishedDate = dateString(published)
	p.Deadline = dateString(deadline)
	p.CreatedAt = createdAt.Format(dateLayout)
	return p, nil
}

func dateString(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(dateLayout)
	return &s
}

func nullDate(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
