package auth

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
)

type ctxKey int

const ctxClaims ctxKey = iota

// ginClaimsKey mirrors the request context entry on the gin context for handler convenience.
const ginClaimsKey = "auth.claims"

var ErrNoClaims = errors.New("claims not in context")

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, ctxClaims, c)
}

func ClaimsFrom(ctx context.Context) (Claims, error) {
	if c, ok := ctx.Value(ctxClaims).(Claims); ok {
		return c, nil
	}
	return Claims{}, ErrNoClaims
}

// UserID returns the verified user id or an error when no claims are attached.
func UserID(ctx context.Context) (int64, error) {
	c, err := ClaimsFrom(ctx)
	if err != nil {
		return 0, err
	}
	if c.UserID == 0 {
		return 0, errors.New("user id not in claims")
	}
	return c.UserID, nil
}

// ClaimsFromGin reads the claims set by RequireToken on the gin context.
func ClaimsFromGin(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(ginClaimsKey)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}
