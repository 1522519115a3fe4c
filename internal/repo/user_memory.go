package repo

import (
	"errors"
	"strings"
	"sync"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username already exists")
)

// InMemoryUserRepository matches usernames case-insensitively.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: []models.User{},
	}
}

// NewUserRepositoryFromHashes seeds a repository from username to bcrypt hash pairs.
func NewUserRepositoryFromHashes(hashes map[string]string) (*InMemoryUserRepository, error) {
	r := NewInMemoryUserRepository()
	for username, hash := range hashes {
		if _, err := r.CreateUser(models.User{Username: username, PasswordHash: hash}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) CreateUser(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Username, u.Username) {
			return models.User{}, ErrUserExists
		}
	}

	u.ID = len(r.users) + 1
	r.users = append(r.users, u)
	return u, nil
}
