package service

import (
	"context"
	"errors"
	"strings"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/repository"
	"vcg-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", "", &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(password) < 8 {
		return nil, "", "", &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.tokenPair(user)
	return user, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.tokenPair(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	// Re-read the user so a deleted account cannot refresh forever
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}

	return s.tokenPair(user)
}

func (s *authService) Session(ctx context.Context, userID string) (*domain.Session, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return &domain.Session{}, nil
	}

	isAdmin, err := s.userRepo.HasRole(ctx, user.ID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		UserID:       user.ID,
		Email:        user.Email,
		HasSession:   true,
		HasAdminRole: isAdmin,
	}, nil
}

func (s *authService) tokenPair(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
