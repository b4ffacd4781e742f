package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/auth"
)

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := auth.HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)
	assert.NotContains(t, hash, "Sup3rSecret")
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("Sup3rSecret")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword("Sup3rSecret", hash))
	assert.False(t, auth.CheckPassword("wrong", hash))
	assert.False(t, auth.CheckPassword("", hash))
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	h1, err := auth.HashPassword("Sup3rSecret")
	require.NoError(t, err)
	h2, err := auth.HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Passw0rd", true},
		{"too short", "Pw0rd", false},
		{"no upper", "passw0rd", false},
		{"no lower", "PASSW0RD", false},
		{"no digit", "Password", false},
		{"empty", "", false},
		{"long valid", "Str0ngEnoughPassword", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := auth.ValidatePasswordStrength(tc.password)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, auth.ErrWeakPassword)
			}
		})
	}
}
