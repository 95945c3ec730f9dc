package attendance

import (
	"context"
	"errors"
)

// Sentinel errors mapped to HTTP responses at the handler layer.
var (
	ErrEmailExists   = errors.New("email already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidStatus = errors.New("invalid status")
)

// validStatuses is the fixed set of attendance states.
var validStatuses = map[string]bool{
	"present":  true,
	"absent":   true,
	"late":     true,
	"half-day": true,
}

// Store is the data access surface the service needs. *Repository satisfies it.
type Store interface {
	CreateUser(ctx context.Context, name, email, role string, department *string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	SearchUsers(ctx context.Context, q string) ([]User, error)
	CreateRecord(ctx context.Context, rec Record) (Record, error)
	ListRecordsByUser(ctx context.Context, userID string) ([]Record, error)
	ListRecordsByDate(ctx context.Context, date string) ([]Record, error)
}

// Service coordinates the domain checks the storage layer does not enforce:
// the duplicate-email pre-check and the status enum.
type Service struct {
	store Store
}

// NewService creates a service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateUser registers a user after checking the email is not taken.
// The check is an exact, case-sensitive match. A concurrent create that
// slips past it fails on the UNIQUE constraint instead.
func (s *Service) CreateUser(ctx context.Context, name, email, role string, department *string) (User, error) {
	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if existing != nil {
		return User{}, ErrEmailExists
	}
	return s.store.CreateUser(ctx, name, email, role, department)
}

// ListUsers returns all users.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.store.ListUsers(ctx)
}

// GetUser returns a user by id or ErrUserNotFound.
func (s *Service) GetUser(ctx context.Context, id string) (User, error) {
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return User{}, err
	}
	if u == nil {
		return User{}, ErrUserNotFound
	}
	return *u, nil
}

// SearchUsers returns users matching q by name or email substring.
func (s *Service) SearchUsers(ctx context.Context, q string) ([]User, error) {
	return s.store.SearchUsers(ctx, q)
}

// CreateRecord validates the status enum and persists a new attendance record.
func (s *Service) CreateRecord(ctx context.Context, rec Record) (Record, error) {
	if !validStatuses[rec.Status] {
		return Record{}, ErrInvalidStatus
	}
	return s.store.CreateRecord(ctx, rec)
}

// RecordsByUser returns a user's records, most recent date string first.
func (s *Service) RecordsByUser(ctx context.Context, userID string) ([]Record, error) {
	return s.store.ListRecordsByUser(ctx, userID)
}

// RecordsByDate returns all records for an exact date string.
func (s *Service) RecordsByDate(ctx context.Context, date string) ([]Record, error) {
	return s.store.ListRecordsByDate(ctx, date)
}
