package middleware

import (
	"net/http"

	"github.com/aakash8113/DayFlow/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Enforcer is a local interface so this package does not depend on casbin
// directly; *casbin.Enforcer satisfies it.
type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// Authorize checks the caller's role (set by AuthMiddleware) against the
// declarative policy for the given resource/action pair.
func Authorize(e Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := e.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				resource+":"+action)
			c.Abort()
			return
		}

		c.Next()
	}
}
