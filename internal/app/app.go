package app

import (
	"os"

	"github.com/aakash8113/DayFlow/internal/attendance"
	"github.com/aakash8113/DayFlow/internal/employee"
	"github.com/aakash8113/DayFlow/internal/leave"
	"github.com/aakash8113/DayFlow/internal/middleware"
	"github.com/aakash8113/DayFlow/internal/payroll"
	"github.com/aakash8113/DayFlow/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&attendance.Attendance{},
		&leave.Leave{},
		&payroll.Payroll{},
	); err != nil {
		return err
	}
	if err := migrateSupportTables(gormDB); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	return registerModules(router, db, gormDB, rdb)
}
