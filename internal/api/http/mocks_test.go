package http_test

import (
	"context"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) Session(ctx context.Context, userID string) (*domain.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

// MockPositionService
type MockPositionService struct {
	mock.Mock
}

func (m *MockPositionService) ListPublic(ctx context.Context) ([]domain.Position, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Position), args.Bool(1), args.Error(2)
}
func (m *MockPositionService) List(ctx context.Context) ([]domain.Position, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Position), args.Bool(1), args.Error(2)
}
func (m *MockPositionService) Get(ctx context.Context, id string) (*domain.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}
func (m *MockPositionService) Create(ctx context.Context, p *domain.Position) (*domain.Position, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}
func (m *MockPositionService) Update(ctx context.Context, id string, upd *domain.PositionUpdate) (*domain.Position, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}
func (m *MockPositionService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPositionService) ToggleActive(ctx context.Context, id string) (*domain.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}

// MockApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, sub *service.ApplicationSubmission) (*domain.Application, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) List(ctx context.Context, filter service.ApplicationFilter) ([]domain.Application, bool, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Application), args.Bool(1), args.Error(2)
}
func (m *MockApplicationService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

// MockContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, name, email, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}
func (m *MockContactService) List(ctx context.Context) ([]domain.ContactMessage, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.ContactMessage), args.Bool(1), args.Error(2)
}

// MockUserRepo backs the role check in the auth middleware.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}
