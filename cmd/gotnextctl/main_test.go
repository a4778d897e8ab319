package main

import (
	"testing"

	"gotnext-backend/internal/auth"
	"gotnext-backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken(t *testing.T) {
	cfg := &config.Config{
		Environment:   "development",
		JWTSecret:     "cli-secret",
		JWTIssuer:     "gotnext-backend",
		JWTTTLMinutes: 5,
	}
	userID := uuid.New()

	token, err := issueToken(cfg, userID, "sam@example.com")
	require.NoError(t, err)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	require.NoError(t, err)
	claims, err := authService.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "sam@example.com", claims.Email)

	cfg.Environment = "production"
	_, err = issueToken(cfg, userID, "")
	assert.Error(t, err)
}

func TestTokenCommandRejectsBadUser(t *testing.T) {
	rootCmd.SetArgs([]string{"token", "--user", "nope"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --user")
}
