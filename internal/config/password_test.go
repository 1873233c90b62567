package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultBcryptCost, cfg.Cost)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfig_CostBounds(t *testing.T) {
	t.Setenv("PASSWORD_PEPPER", "")

	for _, cost := range []string{"9", "15", "abc"} {
		t.Setenv("BCRYPT_COST", cost)
		cfg, err := NewPasswordConfig()
		assert.Error(t, err, "BCRYPT_COST=%q should be rejected", cost)
		assert.Nil(t, cfg)
	}

	t.Setenv("BCRYPT_COST", "10")
	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Cost)
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{Cost: minBcryptCost}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
	assert.False(t, cfg.VerifyPassword("", hash))
}

func TestPasswordConfig_PepperChangesVerification(t *testing.T) {
	peppered := &PasswordConfig{Cost: minBcryptCost, Pepper: "global-secret"}
	plain := &PasswordConfig{Cost: minBcryptCost}

	hash, err := peppered.HashPassword("hunter2")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("hunter2", hash))
	assert.False(t, plain.VerifyPassword("hunter2", hash))
}
