package test

import (
	"context"

	domainErrors "github.com/campusworks/journals/internal/domain/errors"
	"github.com/campusworks/journals/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}
