package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/havendogs/api-server/internal/domains/users/domain"
	"github.com/havendogs/api-server/internal/domains/users/ports"
)

// Service orchestrates the account use cases.
type Service struct {
	repo   ports.Repository
	tokens ports.TokenIssuer
	newID  func() string
}

type Option func(*Service)

// WithIDGenerator overrides account ID generation for deterministic tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewService wires the account workflow with its collaborators.
func NewService(repo ports.Repository, tokens ports.TokenIssuer, opts ...Option) *Service {
	s := &Service{repo: repo, tokens: tokens, newID: uuid.NewString}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Register creates an account and signs its first token. A registration
// against an already-used email fails without touching the store.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (*ports.AuthResult, error) {
	user, err := domain.NewUser(reg)
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := s.repo.GetByEmail(ctx, user.Email); err == nil {
		return nil, ports.ErrEmailTaken
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}

	user.ID = s.newID()
	saved, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(saved.ID, saved.UserType)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: saved}, nil
}

// Login checks credentials and signs a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID, user.UserType)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// UpdateBoardingAvailability mutates the caller's boarding profile.
func (s *Service) UpdateBoardingAvailability(ctx context.Context, userID string, update ports.BoardingUpdate) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.SetBoardingAvailability(update.IsBoardingAvailable, update.BoardingFee); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Update(ctx, user)
}

// ListBoarders returns accounts currently offering boarding.
func (s *Service) ListBoarders(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListBoarders(ctx)
}

// ListVets returns veterinary accounts.
func (s *Service) ListVets(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListVets(ctx)
}

var _ ports.Service = (*Service)(nil)
