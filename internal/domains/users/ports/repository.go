package ports

import (
	"context"
	"errors"

	"github.com/havendogs/api-server/internal/domains/users/domain"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("user already exists")
)

// Repository persists accounts. Email lookups are exact matches against the
// stored lowercase address.
type Repository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	ListBoarders(ctx context.Context) ([]*domain.User, error)
	ListVets(ctx context.Context) ([]*domain.User, error)
}
