package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/havendogs/api-server/internal/domains/users/domain"
	"github.com/havendogs/api-server/internal/domains/users/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory implementation used for demos/tests.
type Repository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

// NewRepository constructs an empty in-memory store.
func NewRepository() *Repository {
	return &Repository{users: map[string]*domain.User{}}
}

// Insert stores a new account, enforcing email uniqueness.
func (r *Repository) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, ports.ErrEmailTaken
		}
	}
	r.users[user.ID] = user.Clone()
	return user.Clone(), nil
}

// GetByID fetches an account if present.
func (r *Repository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return user.Clone(), nil
}

// GetByEmail fetches an account by its lowercase address.
func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range r.users {
		if user.Email == email {
			return user.Clone(), nil
		}
	}
	return nil, ports.ErrNotFound
}

// Update replaces a stored account.
func (r *Repository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return nil, ports.ErrNotFound
	}
	r.users[user.ID] = user.Clone()
	return user.Clone(), nil
}

// ListBoarders returns accounts currently offering boarding.
func (r *Repository) ListBoarders(_ context.Context) ([]*domain.User, error) {
	return r.filter(func(u *domain.User) bool { return u.IsBoardingAvailable }), nil
}

// ListVets returns veterinary accounts.
func (r *Repository) ListVets(_ context.Context) ([]*domain.User, error) {
	return r.filter(func(u *domain.User) bool { return u.UserType.Veterinary() }), nil
}

func (r *Repository) filter(keep func(*domain.User) bool) []*domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*domain.User
	for _, user := range r.users {
		if keep(user) {
			list = append(list, user.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Email < list[j].Email })
	return list
}
