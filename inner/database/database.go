package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/NZpatelK/keyhook-test/inner/common"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// имя уникального индекса (department_id, lower(first_name), lower(last_name))
const EmployeeFullNameIndex = "employee_department_full_name_uidx"

//go:embed migrations/*.sql
var migrations embed.FS

// Подключиться к базе данных с переданным конфигом
func ConnectDbWithCfg(cfg common.Config, logger *common.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.DbDriverName, cfg.Dsn)
	if err != nil {
		logger.Error("Failed to connect to database",
			zap.String("driver", cfg.DbDriverName),
			zap.Error(err))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connection established successfully",
		zap.String("driver", cfg.DbDriverName))

	configurePool(db)

	logger.Debug("Database connection pool configured",
		zap.Int("maxIdleConns", 5),
		zap.Int("maxOpenConns", 20),
		zap.Duration("connMaxLifetime", 1*time.Minute),
		zap.Duration("connMaxIdleTime", 10*time.Minute))

	return db, nil
}

func configurePool(db *sqlx.DB) {
	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(1 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)
}

// Migrate применяет встроенные миграции схемы department/employee
func Migrate(ctx context.Context, db *sqlx.DB, logger *common.Logger) error {
	migrationsDir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("error opening migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db.DB, migrationsDir)
	if err != nil {
		return fmt.Errorf("error creating migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		logger.Error("Failed to apply migrations", zap.Error(err))
		return fmt.Errorf("error applying migrations: %w", err)
	}

	for _, result := range results {
		logger.Info("Migration applied",
			zap.Int64("version", result.Source.Version),
			zap.String("path", result.Source.Path),
			zap.Duration("duration", result.Duration))
	}
	return nil
}
