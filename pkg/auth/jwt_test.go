package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	token, err := issuer.GenerateSessionToken("game-1")
	require.NoError(t, err)

	claims, err := issuer.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "game-1", claims.GameID)
	assert.NoError(t, issuer.Authorize(token, "game-1"))
}

func TestSessionToken_WrongGame(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	token, err := issuer.GenerateSessionToken("game-1")
	require.NoError(t, err)

	assert.Error(t, issuer.Authorize(token, "game-2"))
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := NewIssuer("secret", time.Hour).GenerateSessionToken("game-1")
	require.NoError(t, err)

	_, err = NewIssuer("other", time.Hour).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	issuer := NewIssuer("secret", -time.Minute)
	token, err := issuer.GenerateSessionToken("game-1")
	require.NoError(t, err)

	_, err = issuer.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionToken_Garbage(t *testing.T) {
	_, err := NewIssuer("secret", time.Hour).ValidateSessionToken("not.a.token")
	assert.Error(t, err)
}
