package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "12345678901234567890123456789012"

func TestPasetoMakerRoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	tok, issued, err := maker.CreateToken("reconcile-job", RoleEditor, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	payload, err := maker.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, payload.ID)
	assert.Equal(t, "reconcile-job", payload.Subject)
	assert.True(t, payload.CanWrite())
}

func TestPasetoMakerExpired(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)

	tok, _, err := maker.CreateToken("dashboard", RoleViewer, -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasetoMakerRejectsTampering(t *testing.T) {
	maker, err := NewPasetoMaker(testKey)
	require.NoError(t, err)
	other, err := NewPasetoMaker(strings.Repeat("x", 32))
	require.NoError(t, err)

	tok, _, err := other.CreateToken("x", RoleEditor, time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewPasetoMakerKeySize(t *testing.T) {
	_, err := NewPasetoMaker("short")
	assert.Error(t, err)
}
