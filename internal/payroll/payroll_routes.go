package payroll

import (
	"github.com/aakash8113/DayFlow/internal/middleware"
	"github.com/aakash8113/DayFlow/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	loader middleware.IdentityLoader,
	enforcer middleware.Enforcer,
	rdb *redis.Client,
) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware(loader))
	{
		payroll.GET("", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionRead), h.GetAll)
		payroll.GET("/:id", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionRead), h.GetByID)
		payroll.GET("/:id/payslip", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionRead), h.Payslip)
		payroll.POST("", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionCreate), middleware.Idempotency(rdb), h.Create)
		payroll.PUT("/:id", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionUpdate), h.Update)
		payroll.DELETE("/:id", middleware.Authorize(enforcer, rbac.ResourcePayroll, rbac.ActionDelete), h.Delete)
	}
}
