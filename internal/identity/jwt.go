package identity

import (
	"context"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

type ctxKey int

const tokenKey ctxKey = 0

// WithToken attaches a raw bearer token to the context for TokenProvider.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// Claims includes the registered claims plus the user id set at sign-in.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenProvider extracts the user id from an HS256 JWT carried in the
// context. Expired or malformed tokens yield common.ErrInvalidToken.
type TokenProvider struct {
	secretKey []byte
}

func NewTokenProvider(secretKey []byte) *TokenProvider {
	return &TokenProvider{secretKey: secretKey}
}

func (p *TokenProvider) UserID(ctx context.Context) (string, error) {
	tokenString, ok := ctx.Value(tokenKey).(string)
	if !ok || tokenString == "" {
		return "", common.ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secretKey, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}

// SignToken issues a token for userID; the counterpart of TokenProvider,
// kept here so tests and callers agree on the claim layout.
func SignToken(userID string, secretKey []byte, expiresAt *jwt.NumericDate) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: expiresAt},
		UserID:           userID,
	})
	return token.SignedString(secretKey)
}
