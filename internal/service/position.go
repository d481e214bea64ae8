package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vcg-backend/internal/cache"
	"vcg-backend/internal/domain"
	"vcg-backend/internal/logger"
	"vcg-backend/internal/repository"
)

var ErrPositionNotFound = errors.New("position not found")

type positionService struct {
	repo      repository.PositionRepository
	snapshots *cache.SnapshotCache
}

func NewPositionService(repo repository.PositionRepository, snapshots *cache.SnapshotCache) PositionService {
	return &positionService{
		repo:      repo,
		snapshots: snapshots,
	}
}

func (s *positionService) List(ctx context.Context) ([]domain.Position, bool, error) {
	positions, err := s.repo.List(ctx)
	if err != nil {
		return s.listFromSnapshot(ctx, err)
	}
	if cacheErr := s.snapshots.Put(ctx, cache.KeyPositions, positions); cacheErr != nil {
		logger.Warn("Failed to refresh positions snapshot", "error", cacheErr)
	}
	return positions, false, nil
}

func (s *positionService) ListPublic(ctx context.Context) ([]domain.Position, bool, error) {
	positions, degraded, err := s.List(ctx)
	if err != nil {
		return nil, false, err
	}
	active := make([]domain.Position, 0, len(positions))
	for _, p := range positions {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, degraded, nil
}

func (s *positionService) Get(ctx context.Context, id string) (*domain.Position, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPositionNotFound
	}
	return p, err
}

func (s *positionService) Create(ctx context.Context, p *domain.Position) (*domain.Position, error) {
	if p.Title == "" {
		return nil, &ValidationError{Field: "title", Message: "title is required"}
	}
	if p.Description == "" {
		return nil, &ValidationError{Field: "description", Message: "description is required"}
	}
	if !p.Type.Valid() {
		return nil, &ValidationError{Field: "type", Message: "type must be volt or project"}
	}

	// A position born active is published today unless a date was given
	if p.Active && p.PublishedDate == nil {
		today := time.Now().UTC().Format("2006-01-02")
		p.PublishedDate = &today
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *positionService) Update(ctx context.Context, id string, upd *domain.PositionUpdate) (*domain.Position, error) {
	if upd.Type != nil && !upd.Type.Valid() {
		return nil, &ValidationError{Field: "type", Message: "type must be volt or project"}
	}
	p, err := s.repo.Update(ctx, id, upd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPositionNotFound
	}
	return p, err
}

func (s *positionService) Delete(ctx context.Context, id string) error {
	// Applications snapshot the position title as plain text; deleting the
	// listing detaches them and nothing else.
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPositionNotFound
	}
	return err
}

func (s *positionService) ToggleActive(ctx context.Context, id string) (*domain.Position, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	active := !p.Active
	upd := &domain.PositionUpdate{Active: &active}
	if active && p.PublishedDate == nil {
		today := time.Now().UTC().Format("2006-01-02")
		upd.PublishedDate = &today
	}
	return s.Update(ctx, id, upd)
}

func (s *positionService) listFromSnapshot(ctx context.Context, cause error) ([]domain.Position, bool, error) {
	var positions []domain.Position
	if err := s.snapshots.Get(ctx, cache.KeyPositions, &positions); err != nil {
		return nil, false, cause
	}
	logger.Warn("Serving positions from fallback snapshot", "cause", cause)
	return positions, true, nil
}
