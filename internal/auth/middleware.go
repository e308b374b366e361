package auth

import (
	"net/http"
	"strings"

	"nodebird-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

const authorizationHeader = "Authorization"

// bearerPrefix is stripped once, case-sensitively. A compact JWT starts with
// the base64url header "eyJ", so a raw token is never altered by the strip.
const bearerPrefix = "Bearer "

// StatusTokenExpired is the non-standard status used to tell clients to re-issue.
const StatusTokenExpired = 419

// RequireToken verifies the presented token and injects its claims into the
// request context. The wrapped handlers never run without valid claims.
//
// The header value is used verbatim; a "Bearer " scheme prefix is accepted
// but no whitespace is trimmed.
func RequireToken(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := strings.TrimPrefix(c.GetHeader(authorizationHeader), bearerPrefix)

		res := m.Verify(tok)
		switch res.Outcome {
		case OutcomeValid:
		case OutcomeExpired:
			logger.FromGin(c).Debug("token rejected", "outcome", res.Outcome.String())
			c.AbortWithStatusJSON(StatusTokenExpired, gin.H{"code": StatusTokenExpired, "message": "token expired"})
			return
		default:
			logger.FromGin(c).Debug("token rejected", "outcome", res.Outcome.String(), "reason", res.Err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "invalid token"})
			return
		}

		ctx := WithClaims(c.Request.Context(), res.Claims)
		c.Request = c.Request.WithContext(ctx)
		c.Set(ginClaimsKey, res.Claims)

		c.Next()
	}
}
