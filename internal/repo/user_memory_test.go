package repo

import (
	"testing"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryUserRepository(t *testing.T) {
	r, err := NewUserRepositoryFromHashes(map[string]string{"admin": "hash"})
	require.NoError(t, err)

	u, err := r.GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Equal(t, 1, u.ID)

	_, err = r.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = r.CreateUser(models.User{Username: "admin"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestInMemoryUserRepository_CaseInsensitive(t *testing.T) {
	r, err := NewUserRepositoryFromHashes(map[string]string{"alice": "hash"})
	require.NoError(t, err)

	u, err := r.GetByUsername("Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = r.CreateUser(models.User{Username: "ALICE"})
	assert.ErrorIs(t, err, ErrUserExists)
}
