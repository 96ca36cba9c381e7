package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix = "Bearer "

	// identityKey is where the verified user id lives in the request context.
	// Handlers read it through Identity, never directly.
	identityKey = "auth.identity"
)

// SetIdentity attaches the verified user id to the request context.
func SetIdentity(ctx *gin.Context, userID string) {
	ctx.Set(identityKey, userID)
}

// Identity returns the user id attached by the auth middleware.
func Identity(ctx *gin.Context) (string, bool) {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return "", false
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// Auth guards protected routes. It extracts the bearer token, verifies it and
// attaches the resolved identity to the request context; any failure ends the
// request with a uniform 401 before the handler runs.
func Auth(verify func(token string) (string, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, Error{Message: "unauthorized"})
			return
		}

		userID, err := verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, Error{Message: "unauthorized"})
			return
		}

		SetIdentity(ctx, userID)
		ctx.Next()
	}
}
