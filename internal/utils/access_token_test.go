package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")

	util := NewSessionTokenUtil()

	token, err := util.CreateToken("alice", "session-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.DecodeToken(token)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, "session-123", claims["jti"])
}

func TestDecodeExpiredToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")

	util := NewSessionTokenUtil()

	token, err := util.CreateToken("alice", "session-123", -time.Minute)
	require.NoError(t, err)

	_, err = util.DecodeToken(token)
	assert.EqualError(t, err, "token expired")
}

func TestDecodeWithWrongSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret-one")
	util := NewSessionTokenUtil()

	token, err := util.CreateToken("alice", "session-123", time.Hour)
	require.NoError(t, err)

	t.Setenv("SESSION_SECRET", "secret-two")
	_, err = util.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeGarbageToken(t *testing.T) {
	t.Setenv("SESSION_SECRET", "unit-test-secret")

	_, err := NewSessionTokenUtil().DecodeToken("not-a-token")
	assert.Error(t, err)
}
