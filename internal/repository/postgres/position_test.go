package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func positionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "type", "requirements", "preferred_majors",
		"company_name", "project_description", "active", "published_date", "deadline", "created_at",
	})
}

func TestPositionRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewPositionRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		published := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		rows := positionRows().AddRow(
			"pos-1", "Backend Developer", "Build things", "volt",
			pq.Array([]string{"Go"}), pq.Array([]string{"CS"}),
			"", "", true, published, nil, time.Now(),
		)

		mock.ExpectQuery("SELECT (.+) FROM positions WHERE id = \\$1").
			WithArgs("pos-1").
			WillReturnRows(rows)

		p, err := repo.GetByID(ctx, "pos-1")
		assert.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, "Backend Developer", p.Title)
		assert.Equal(t, domain.PositionTypeVolt, p.Type)
		assert.Equal(t, []string{"Go"}, p.Requirements)
		if assert.NotNil(t, p.PublishedDate) {
			assert.Equal(t, "2026-03-01", *p.PublishedDate)
		}
		assert.Nil(t, p.Deadline)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM positions WHERE id = \\$1").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, p)
	})
}

func TestPositionRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewPositionRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := &domain.Position{
			Title:           "Data Analyst",
			Description:     "Analyze",
			Type:            domain.PositionTypeProject,
			Requirements:    []string{"SQL"},
			PreferredMajors: []string{"DS"},
			CompanyName:     "Acme BV",
			Active:          true,
		}

		mock.ExpectQuery("INSERT INTO positions").
			WithArgs(sqlmock.AnyArg(), p.Title, p.Description, p.Type,
				pq.Array(p.Requirements), pq.Array(p.PreferredMajors),
				p.CompanyName, nil, p.Active, nil, nil, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.CreatedAt)
	})
}

func TestPositionRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewPositionRepository(db)
	ctx := context.Background()

	t.Run("Partial Update Returns Record", func(t *testing.T) {
		title := "New Title"
		rows := positionRows().AddRow(
			"pos-1", title, "desc", "volt",
			pq.Array([]string{}), pq.Array([]string{}),
			"", "", false, nil, nil, time.Now(),
		)

		mock.ExpectQuery("UPDATE positions SET title = \\$1 WHERE id = \\$2 RETURNING").
			WithArgs(title, "pos-1").
			WillReturnRows(rows)

		p, err := repo.Update(ctx, "pos-1", &domain.PositionUpdate{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, title, p.Title)
	})

	t.Run("Empty Update Falls Back To Read", func(t *testing.T) {
		rows := positionRows().AddRow(
			"pos-1", "Unchanged", "desc", "volt",
			pq.Array([]string{}), pq.Array([]string{}),
			"", "", false, nil, nil, time.Now(),
		)

		mock.ExpectQuery("SELECT (.+) FROM positions WHERE id = \\$1").
			WithArgs("pos-1").
			WillReturnRows(rows)

		p, err := repo.Update(ctx, "pos-1", &domain.PositionUpdate{})
		assert.NoError(t, err)
		assert.Equal(t, "Unchanged", p.Title)
	})

	t.Run("Missing Row", func(t *testing.T) {
		active := true
		mock.ExpectQuery("UPDATE positions SET active = \\$1 WHERE id = \\$2 RETURNING").
			WithArgs(active, "missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, "missing", &domain.PositionUpdate{Active: &active})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestPositionRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewPositionRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM positions WHERE id = \\$1").
			WithArgs("pos-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "pos-1"))
	})

	t.Run("Missing Row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM positions WHERE id = \\$1").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "missing"), sql.ErrNoRows)
	})
}

func TestPositionRepository_DeactivateExpired(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewPositionRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE positions SET active = false WHERE active AND deadline IS NOT NULL AND deadline < \\$1").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeactivateExpired(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestPositionRepository_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewPositionRepository(db)
	ctx := context.Background()

	rows := positionRows().
		AddRow("pos-1", "A", "d", "volt", pq.Array([]string{}), pq.Array([]string{}), "", "", true, nil, nil, time.Now()).
		AddRow("pos-2", "B", "d", "project", pq.Array([]string{}), pq.Array([]string{}), "Acme", "Proj", true, nil, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM positions WHERE active ORDER BY created_at DESC").
		WillReturnRows(rows)

	positions, err := repo.ListActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, positions, 2)
	assert.Equal(t, "Acme", positions[1].CompanyName)
}
