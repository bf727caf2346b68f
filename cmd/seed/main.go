package main

import (
	"context"

	"github.com/NZpatelK/keyhook-test/inner/common"
	"github.com/NZpatelK/keyhook-test/inner/database"
	"github.com/NZpatelK/keyhook-test/inner/department"
	"github.com/NZpatelK/keyhook-test/inner/employee"
	"github.com/NZpatelK/keyhook-test/inner/seed"
	"github.com/NZpatelK/keyhook-test/inner/validator"

	"go.uber.org/zap"
)

// наполняет пустую базу: 10 отделов и SEED_EMPLOYEES сотрудников
func main() {
	var cfg = common.GetConfig(".env")
	var logger = common.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := database.ConnectDbWithCfg(cfg, logger)
	if err != nil {
		logger.Fatal("Connection error", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if err := database.Migrate(ctx, db, logger); err != nil {
		logger.Fatal("Migration error", zap.Error(err))
	}

	var departmentService = department.NewService(department.NewRepository(db), logger)
	var employeeService = employee.NewService(employee.NewRepository(db), departmentService, validator.New(), logger)

	result, err := seed.NewSeeder(departmentService, employeeService, logger).Seed(ctx, cfg.SeedEmployees)
	if err != nil {
		logger.Fatal("Seeding error", zap.Error(err))
	}
	logger.Info("Seed completed",
		zap.Bool("skipped", result.Skipped),
		zap.Int("employees", result.Employees),
		zap.Int("duplicates", result.Duplicates))
}
