package postgres

import (
	"database/sql"

	"vcg-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.PositionRepository
	repository.ApplicationRepository
	repository.ContactMessageRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		PositionRepository:       NewPositionRepository(db),
		ApplicationRepository:    NewApplicationRepository(db),
		ContactMessageRepository: NewContactMessageRepository(db),
		UserRepository:           NewUserRepository(db),
	}
}
