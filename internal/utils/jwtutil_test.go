package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vican-pos/internal/domain"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	ti := NewTokenIssuer("test-secret")

	token, exp, err := ti.GenerateToken(7, "kasir", "cashier", PurposeSession, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := ti.ParseToken(token, PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserId)
	assert.Equal(t, "kasir", claims.Username)
	assert.Equal(t, "cashier", claims.Role)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	ti := NewTokenIssuer("test-secret")

	login, _, err := ti.GenerateToken(7, "kasir", "cashier", PurposeLogin, time.Hour)
	require.NoError(t, err)
	_, err = ti.ParseToken(login, PurposeSession)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	other := NewTokenIssuer("another-secret")
	_, err = other.ParseToken(login, PurposeLogin)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = ti.ParseToken("not-a-token", PurposeSession)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	ti.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _, err := ti.GenerateToken(7, "kasir", "cashier", PurposeSession, time.Hour)
	require.NoError(t, err)
	_, err = ti.ParseToken(stale, PurposeSession)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
