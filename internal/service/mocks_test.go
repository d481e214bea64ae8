package service_test

import (
	"context"
	"io"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockPositionRepo
type MockPositionRepo struct {
	mock.Mock
}

func (m *MockPositionRepo) Create(ctx context.Context, p *domain.Position) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPositionRepo) GetByID(ctx context.Context, id string) (*domain.Position, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}
func (m *MockPositionRepo) List(ctx context.Context) ([]domain.Position, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Position), args.Error(1)
}
func (m *MockPositionRepo) ListActive(ctx context.Context) ([]domain.Position, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Position), args.Error(1)
}
func (m *MockPositionRepo) Update(ctx context.Context, id string, upd *domain.PositionUpdate) (*domain.Position, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}
func (m *MockPositionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPositionRepo) DeactivateExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) List(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

// MockContactRepo
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockContactRepo) List(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

// MockUserRepo
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

// MockDocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Validate(kind service.DocumentKind, doc *service.DocumentUpload) error {
	args := m.Called(kind, doc)
	return args.Error(0)
}
func (m *MockDocumentService) Upload(ctx context.Context, applicantEmail string, kind service.DocumentKind, doc *service.DocumentUpload) (*service.StoredDocument, error) {
	args := m.Called(ctx, applicantEmail, kind, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StoredDocument), args.Error(1)
}
func (m *MockDocumentService) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApplicationConfirmation(ctx context.Context, to, fullName, position string) error {
	args := m.Called(ctx, to, fullName, position)
	return args.Error(0)
}
func (m *MockEmailService) SendNewApplicationNotice(ctx context.Context, fullName, position string) error {
	args := m.Called(ctx, fullName, position)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingDigest(ctx context.Context, pending []domain.Application) error {
	args := m.Called(ctx, pending)
	return args.Error(0)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) EnsureBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	args := m.Called(ctx, key, contentType, body, size)
	return args.Error(0)
}
func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
func (m *MockStorage) Open(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
