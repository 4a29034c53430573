package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken("rc1abc", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "rc1abc", claims.Address)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "access", claims.TokenType)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken("rc1abc", "alice")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken("rc1abc", "alice")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RefreshFlow(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	refresh, err := manager.GenerateRefreshToken("rc1abc")
	require.NoError(t, err)

	access, err := manager.RefreshAccessToken(refresh, "alice")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "rc1abc", claims.Address)
	assert.Equal(t, "access", claims.TokenType)
}

func TestJWTManager_RefreshRejectsAccessToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	access, err := manager.GenerateAccessToken("rc1abc", "alice")
	require.NoError(t, err)

	// 访问令牌不能当刷新令牌用
	_, err = manager.RefreshAccessToken(access, "alice")
	assert.Error(t, err)
}
