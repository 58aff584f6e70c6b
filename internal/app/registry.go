package app

import (
	"database/sql"

	"github.com/aakash8113/DayFlow/internal/attendance"
	"github.com/aakash8113/DayFlow/internal/auth"
	"github.com/aakash8113/DayFlow/internal/employee"
	"github.com/aakash8113/DayFlow/internal/leave"
	"github.com/aakash8113/DayFlow/internal/messaging/kafka"
	"github.com/aakash8113/DayFlow/internal/payroll"
	"github.com/aakash8113/DayFlow/internal/rbac"
	"github.com/aakash8113/DayFlow/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	identityLoader := employee.NewIdentityLoader(employeeRepo)

	// --- Services ---
	authService := auth.NewService(db, employeeRepo, counterRepo, outboxRepo)
	employeeService := employee.NewService(db, employeeRepo, rdb)
	attendanceService := attendance.NewService(db, attendanceRepo)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo, outboxRepo)
	payrollService := payroll.NewService(db, payrollRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, identityLoader)
		employee.RegisterRoutes(api, employeeHandler, identityLoader, enforcer)
		attendance.RegisterRoutes(api, attendanceHandler, identityLoader, enforcer)
		leave.RegisterRoutes(api, leaveHandler, identityLoader, enforcer)
		payroll.RegisterRoutes(api, payrollHandler, identityLoader, enforcer, rdb)
	}

	return nil
}
