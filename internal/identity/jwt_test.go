package identity

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenProvider_RoundTrip(t *testing.T) {
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))
	token, err := SignToken("user-42", testSecret, exp)
	require.NoError(t, err)

	p := NewTokenProvider(testSecret)
	userID, err := p.UserID(WithToken(context.Background(), token))
	require.NoError(t, err)
	require.Equal(t, "user-42", userID)
}

func TestTokenProvider_Invalid(t *testing.T) {
	p := NewTokenProvider(testSecret)

	t.Run("no token in context", func(t *testing.T) {
		_, err := p.UserID(context.Background())
		require.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := p.UserID(WithToken(context.Background(), "not.a.token"))
		require.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		exp := jwt.NewNumericDate(time.Now().Add(-time.Minute))
		token, err := SignToken("user-42", testSecret, exp)
		require.NoError(t, err)
		_, err = p.UserID(WithToken(context.Background(), token))
		require.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		exp := jwt.NewNumericDate(time.Now().Add(time.Hour))
		token, err := SignToken("user-42", []byte("other-secret"), exp)
		require.NoError(t, err)
		_, err = p.UserID(WithToken(context.Background(), token))
		require.ErrorIs(t, err, common.ErrInvalidToken)
	})
}
