package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_SamePasswordDifferentDigests(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("repeatable")
	require.NoError(t, err)
	second, err := hasher.Hash("repeatable")
	require.NoError(t, err)

	// Each digest carries its own random salt.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("repeatable", first))
	assert.True(t, hasher.Check("repeatable", second))
}

func TestBcryptHasher_WorkFactor(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("any password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcryptCost, cost)
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("password", "not a bcrypt hash"))
	assert.False(t, hasher.Check("password", ""))
}
