package leave

import (
	"github.com/aakash8113/DayFlow/internal/middleware"
	"github.com/aakash8113/DayFlow/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	loader middleware.IdentityLoader,
	enforcer middleware.Enforcer,
) {
	leave := r.Group("/leave")
	leave.Use(middleware.AuthMiddleware(loader))
	{
		leave.GET("", middleware.Authorize(enforcer, rbac.ResourceLeave, rbac.ActionRead), h.GetAll)
		leave.POST("", middleware.Authorize(enforcer, rbac.ResourceLeave, rbac.ActionCreate), h.Apply)
		leave.PUT("/:id/review", middleware.Authorize(enforcer, rbac.ResourceLeave, rbac.ActionReview), h.Review)
		leave.DELETE("/:id", middleware.Authorize(enforcer, rbac.ResourceLeave, rbac.ActionDelete), h.Delete)
	}
}
