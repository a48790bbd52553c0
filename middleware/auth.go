package middleware

import (
	"errors"
	"strings"

	"blogapi/helper"
	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

var httpHelper = &helper.HTTPHelper{}

// Auth validates the bearer token on every protected route and stores the
// resolved Identity on the request context as a plain value. An expired
// token is reported distinctly so clients know to re-authenticate; every
// other failure is a generic 401.
func Auth(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpHelper.SendUnauthorizedError(c, "Authorization header required", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			httpHelper.SendUnauthorizedError(c, "Bearer token required", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		identity, err := tokens.Validate(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				httpHelper.SendUnauthorizedError(c, "Token has expired", httpHelper.EmptyJsonMap())
			} else {
				httpHelper.SendUnauthorizedError(c, "Invalid token", httpHelper.EmptyJsonMap())
			}
			c.Abort()
			return
		}

		c.Set(identityKey, *identity)

		c.Next()
	}
}

// IdentityFromContext returns the Identity stored by Auth.
func IdentityFromContext(c *gin.Context) (models.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}
