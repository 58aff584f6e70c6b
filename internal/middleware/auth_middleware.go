package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/aakash8113/DayFlow/internal/shared/contextutil"
	"github.com/aakash8113/DayFlow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved caller loaded from storage on every request, so
// role changes and deactivations take effect immediately instead of at
// token expiry.
type Identity struct {
	ID       string
	Email    string
	Role     string
	IsActive bool
}

//go:generate mockgen -source=auth_middleware.go -destination=mock/identity_loader_mock.go -package=mock
type IdentityLoader interface {
	LoadIdentity(ctx context.Context, employeeID string) (Identity, error)
}

// Gin context keys set by AuthMiddleware.
const (
	CtxEmployeeID = "employee_id"
	CtxRole       = "role"
)

func AuthMiddleware(loader IdentityLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			code, message := "INVALID_TOKEN", "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code, message = "TOKEN_EXPIRED", "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || employeeID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Employee ID not found in token", nil)
			c.Abort()
			return
		}

		identity, err := loader.LoadIdentity(c.Request.Context(), employeeID)
		if err != nil {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Employee not found", nil)
			c.Abort()
			return
		}
		if !identity.IsActive {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Account is inactive. Please contact HR.", nil)
			c.Abort()
			return
		}

		c.Set(CtxEmployeeID, identity.ID)
		c.Set(CtxRole, identity.Role)
		c.Request = c.Request.WithContext(
			contextutil.WithEmployeeID(c.Request.Context(), identity.ID),
		)

		c.Next()
	}
}
