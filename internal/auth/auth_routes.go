package auth

import (
	"time"

	"github.com/aakash8113/DayFlow/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, loader middleware.IdentityLoader) {
	authGroup := r.Group("/auth")
	{
		// Signup and signin sit outside the auth middleware, so rate
		// limit by IP to slow credential stuffing.
		authGroup.POST("/signup", middleware.RateLimitByIP(rate.Every(time.Second), 5), h.Signup)
		authGroup.POST("/signin", middleware.RateLimitByIP(rate.Every(time.Second), 5), h.Signin)

		authGroup.GET("/me", middleware.AuthMiddleware(loader), middleware.RateLimitByUser(rate.Limit(10), 20), h.GetMe)
	}
}
