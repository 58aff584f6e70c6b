package attendance

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
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware(loader))
	{
		attendance.POST("/checkin", middleware.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionCheckIn), h.CheckIn)
		attendance.POST("/checkout", middleware.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionCheckIn), h.CheckOut)
		attendance.GET("", middleware.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionRead), h.GetAll)
		attendance.POST("", middleware.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionCreate), h.Create)
		attendance.PUT("/:id", middleware.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionUpdate), h.Update)
		attendance.DELETE("/:id", middleware.Authorize(enforcer, rbac.ResourceAttendance, rbac.ActionDelete), h.Delete)
	}
}
