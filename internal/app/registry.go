package app

import (
	"database/sql"

	"go-payroll/internal/attendance"
	"go-payroll/internal/department"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/position"
	"go-payroll/internal/salary"
	"go-payroll/internal/salaryconfig"
	"go-payroll/internal/salaryitem"
	"go-payroll/internal/shared/counter"
	"go-payroll/internal/socialsecurity"

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
	attendanceRepo := attendance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	positionRepo := position.NewRepository(gormDB)
	salaryConfigRepo := salaryconfig.NewRepository(gormDB)
	salaryItemRepo := salaryitem.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	socialSecurityRepo := socialsecurity.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	departmentService := department.NewService(db, departmentRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	positionService := position.NewService(db, positionRepo)
	salaryConfigService := salaryconfig.NewService(db, salaryConfigRepo)
	salaryItemService := salaryitem.NewService(db, salaryItemRepo)
	socialSecurityService := socialsecurity.NewService(db, socialSecurityRepo)

	deductionCalculator := attendance.NewDeductionCalculator(attendanceRepo)
	salaryService := salary.NewService(
		db,
		salaryRepo,
		employeeRepo,
		salaryConfigRepo,
		salaryItemService,
		deductionCalculator,
		outboxRepo,
		rdb,
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	positionHandler := position.NewHandler(positionService)
	salaryConfigHandler := salaryconfig.NewHandler(salaryConfigService)
	salaryHandler := salary.NewHandlerWithRedis(salaryService, rdb)
	salaryItemHandler := salaryitem.NewHandler(salaryItemService)
	socialSecurityHandler := socialsecurity.NewHandler(socialSecurityService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		position.RegisterRoutes(api, positionHandler)
		salary.RegisterRoutes(api, salaryHandler, rdb)
		salaryconfig.RegisterRoutes(api, salaryConfigHandler)
		salaryitem.RegisterRoutes(api, salaryItemHandler)
		socialsecurity.RegisterRoutes(api, socialSecurityHandler)
	}

	return nil
}
