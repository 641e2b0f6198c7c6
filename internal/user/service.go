package user

import "context"

// Finder is the read side of Repository.
type Finder interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

// Service contains user lookups used by authentication.
type Service struct {
	repo Finder
}

// NewService creates a new user Service.
func NewService(repo Finder) *Service {
	return &Service{repo: repo}
}

// GetByID returns a user by their UUID.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
