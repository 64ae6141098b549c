package ports

import (
	"context"

	"github.com/havendogs/api-server/internal/domains/users/domain"
)

// Identity is the authenticated principal carried by a verified token.
type Identity struct {
	UserID   string
	UserType string
}

// TokenIssuer mints and verifies bearer tokens for accounts.
type TokenIssuer interface {
	Issue(userID string, userType domain.UserType) (string, error)
	Verify(token string) (*Identity, error)
}

// AuthResult pairs a signed token with the account it represents.
type AuthResult struct {
	Token string
	User  *domain.User
}

// BoardingUpdate carries the boarding-availability mutation for one account.
type BoardingUpdate struct {
	IsBoardingAvailable bool
	BoardingFee         float64
}

// Service exposes the account use cases to adapters.
type Service interface {
	Register(ctx context.Context, reg domain.Registration) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	UpdateBoardingAvailability(ctx context.Context, userID string, update BoardingUpdate) (*domain.User, error)
	ListBoarders(ctx context.Context) ([]*domain.User, error)
	ListVets(ctx context.Context) ([]*domain.User, error)
}
