package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	// Salted: hashing twice gives different output.
	again, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost)
	password := "secret123"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "configured", cost: 10, want: 10},
		{name: "zero falls back", cost: 0, want: bcrypt.DefaultCost},
		{name: "too high falls back", cost: 99, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newBcryptHasher(tt.cost).cost)
		})
	}

	hash, err := newBcryptHasher(bcrypt.MinCost).Hash("x")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}

	_, err := newBcryptHasher(bcrypt.MinCost).Hash(string(long))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
