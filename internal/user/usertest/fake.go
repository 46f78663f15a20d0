// Package usertest provides an in-memory UserRepository for tests.
package usertest

import (
	"context"
	"sync"

	"github.com/tair/storefront/internal/user/domain"
)

// FakeRepository is a slice-backed domain.UserRepository
type FakeRepository struct {
	mu    sync.Mutex
	users []domain.User
	Err   error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	user.ID = uint(len(r.users) + 1)
	r.users = append(r.users, *user)
	return nil
}

func (r *FakeRepository) FindByID(_ context.Context, id uint) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

func (r *FakeRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r *FakeRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	_, err := r.find(func(u domain.User) bool { return u.Username == username || u.Email == email })
	if err == domain.ErrUserNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *FakeRepository) find(match func(domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
