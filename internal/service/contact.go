package service

import (
	"context"

	"vcg-backend/internal/cache"
	"vcg-backend/internal/domain"
	"vcg-backend/internal/logger"
	"vcg-backend/internal/repository"
)

type contactService struct {
	repo      repository.ContactMessageRepository
	snapshots *cache.SnapshotCache
}

func NewContactService(repo repository.ContactMessageRepository, snapshots *cache.SnapshotCache) ContactService {
	return &contactService{
		repo:      repo,
		snapshots: snapshots,
	}
}

func (s *contactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email", Message: "email is required"}
	}
	if message == "" {
		return nil, &ValidationError{Field: "message", Message: "message is required"}
	}

	m := &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *contactService) List(ctx context.Context) ([]domain.ContactMessage, bool, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		var cached []domain.ContactMessage
		if cacheErr := s.snapshots.Get(ctx, cache.KeyMessages, &cached); cacheErr != nil {
			return nil, false, err
		}
		logger.Warn("Serving contact messages from fallback snapshot", "cause", err)
		return cached, true, nil
	}
	if cacheErr := s.snapshots.Put(ctx, cache.KeyMessages, messages); cacheErr != nil {
		logger.Warn("Failed to refresh contact messages snapshot", "error", cacheErr)
	}
	return messages, false, nil
}
