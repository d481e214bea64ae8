package postgres_test

import (
	"context"
	"testing"
	"time"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestContactMessageRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewContactMessageRepository(db)
	ctx := context.Background()

	m := &domain.ContactMessage{Name: "Visitor", Email: "visitor@example.com", Message: "Hello"}

	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs(sqlmock.AnyArg(), m.Name, m.Email, m.Message, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	err = repo.Create(ctx, m)
	assert.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.NotEmpty(t, m.CreatedAt)
}

func TestContactMessageRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewContactMessageRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "message", "created_at"}).
		AddRow("msg-2", "B", "b@example.com", "Second", time.Now()).
		AddRow("msg-1", "A", "a@example.com", "First", time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM contact_messages ORDER BY created_at DESC").
		WillReturnRows(rows)

	messages, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "msg-2", messages[0].ID)
}
