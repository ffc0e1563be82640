package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	// MinCost keeps the test fast.
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("abcdef")
	require.NoError(t, err)
	assert.NotEqual(t, "abcdef", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2a$"))

	assert.NoError(t, hasher.Compare(hashed, "abcdef"))
	assert.Error(t, hasher.Compare(hashed, "wrong"))
}

func TestBcryptHashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("abcdef")
	require.NoError(t, err)
	second, err := hasher.Hash("abcdef")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasherDefaultsCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(bcrypt.MinCost + 1)
	assert.Equal(t, bcrypt.MinCost+1, hasher.cost)
}
