package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickblog/auth"
	"quickblog/logger"
)

const claimsKey = "auth_claims"

// TokenVerifier validates a bearer token and returns the verified claims.
// Satisfied by *auth.Verifier; faked in handler tests.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

// RequireAuth verifies the request's bearer token and stores the verified
// claims on the context. Every failure collapses to the same 401 body so
// the response does not reveal which verification step failed.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Log.Warnf("token verification failed: %v", err)
			abortUnauthorized(c)
			return
		}

		c.Set(claimsKey, *claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
}

// ClaimsFrom returns the verified claims stored by RequireAuth.
func ClaimsFrom(c *gin.Context) (auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return auth.Claims{}, false
	}
	claims, ok := v.(auth.Claims)
	return claims, ok
}
