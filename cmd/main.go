package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/NZpatelK/keyhook-test/docs"
	"github.com/NZpatelK/keyhook-test/inner/common"
	"github.com/NZpatelK/keyhook-test/inner/database"
	"github.com/NZpatelK/keyhook-test/inner/department"
	"github.com/NZpatelK/keyhook-test/inner/employee"
	"github.com/NZpatelK/keyhook-test/inner/info"
	"github.com/NZpatelK/keyhook-test/inner/validator"
	"github.com/NZpatelK/keyhook-test/inner/web"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title          Employee Directory API
// @version        1.0
// @description    Paginated, filterable and sortable directory of employees.
// @BasePath       /api/v1
// @securityDefinitions.oauth2.accessCode  OAuth2
// @tokenUrl       http://localhost:9990/realms/directory/protocol/openid-connect/token
// @authorizationUrl  http://localhost:9990/realms/directory/protocol/openid-connect/auth
func main() {
	// читаем конфиги
	var cfg = common.GetConfig(".env")
	// создаём логгер
	var logger = common.NewLogger(cfg)
	// Отложенный вызов записи сообщений из буфера в лог
	defer func() { _ = logger.Sync() }()

	db, err := database.ConnectDbWithCfg(cfg, logger)
	if err != nil {
		logger.Fatal("Connection error", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing db", zap.Error(err))
		}
	}()

	if err := database.Migrate(context.Background(), db, logger); err != nil {
		logger.Fatal("Migration error", zap.Error(err))
	}

	var server = build(cfg, db, logger)

	go func() {
		var err error
		if cfg.TlsEnabled() {
			logger.Info("Starting HTTPS server", zap.String("addr", cfg.AppAddr))
			err = server.App.ListenTLS(cfg.AppAddr, cfg.SslSert, cfg.SslKey)
		} else {
			logger.Info("Starting HTTP server", zap.String("addr", cfg.AppAddr))
			err = server.App.Listen(cfg.AppAddr)
		}
		if err != nil {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	if err := server.App.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

// build функция, связывающая компоненты приложения
func build(cfg common.Config, db *sqlx.DB, logger *common.Logger) *web.Server {
	// создаём веб-сервер
	var server = web.NewServer(cfg, logger)
	web.InitSwagger(server.App, cfg)

	// создаём валидатор
	var vld = validator.New()

	// создаём репозитории, сервисы и контроллеры
	var departmentRepo = department.NewRepository(db)
	var departmentService = department.NewService(departmentRepo, logger)
	var departmentController = department.NewController(server, departmentService, logger)
	departmentController.RegisterRoutes()

	var employeeRepo = employee.NewRepository(db)
	var employeeService = employee.NewService(employeeRepo, departmentService, vld, logger)
	var employeeController = employee.NewController(server, employeeService, logger)
	employeeController.RegisterRoutes()

	var infoController = info.NewController(server, cfg, db, logger)
	infoController.RegisterRoutes()

	return server
}
