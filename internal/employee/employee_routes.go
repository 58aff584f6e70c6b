package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(loader))
	{
		employees.GET("", middleware.Authorize(enforcer, rbac.ResourceEmployee, rbac.ActionList), h.GetAll)
		employees.GET("/options", middleware.Authorize(enforcer, rbac.ResourceEmployee, rbac.ActionRead), h.GetOptions)
		employees.GET("/:id", middleware.Authorize(enforcer, rbac.ResourceEmployee, rbac.ActionRead), h.GetByID)
		employees.PUT("/:id", middleware.Authorize(enforcer, rbac.ResourceEmployee, rbac.ActionUpdate), h.Update)
		employees.DELETE("/:id", middleware.Authorize(enforcer, rbac.ResourceEmployee, rbac.ActionDelete), h.Delete)
	}
}
