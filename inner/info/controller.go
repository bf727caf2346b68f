package info

import (
	"context"
	"time"

	"github.com/NZpatelK/keyhook-test/inner/common"
	"github.com/NZpatelK/keyhook-test/inner/web"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// время ожидания ответа базы данных при проверке здоровья
const pingTimeout = 2 * time.Second

const (
	statusOk           = "OK"
	statusError        = "ERROR"
	statusNotConnected = "NOT_CONNECTED"
)

type Controller struct {
	server *web.Server
	cfg    common.Config
	db     *sqlx.DB
	logger *common.Logger
}

func NewController(server *web.Server, cfg common.Config, db *sqlx.DB, logger *common.Logger) *Controller {
	return &Controller{
		server: server,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	// требуется ли токен для создания сотрудников
	WriteAuth bool `json:"write_auth"`
} // @name Info

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
} // @name Health

func (c *Controller) RegisterRoutes() {
	// полный путь будет "/internal/info"
	c.server.GroupInternal.Get("/info", c.GetInfo)
	// полный путь будет "/internal/health"
	c.server.GroupInternal.Get("/health", c.GetHealth)
}

// GetInfo получение информации о приложении
func (c *Controller) GetInfo(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(&InfoResponse{
		Name:      c.cfg.AppName,
		Version:   c.cfg.AppVersion,
		WriteAuth: c.cfg.AuthEnabled(),
	})
}

// GetHealth проверка работоспособности приложения и соединения с базой
func (c *Controller) GetHealth(ctx *fiber.Ctx) error {
	if c.db == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(&HealthResponse{
			Status:   statusError,
			Database: statusNotConnected,
		})
	}

	pingCtx, cancel := context.WithTimeout(ctx.UserContext(), pingTimeout)
	defer cancel()
	if err := c.db.PingContext(pingCtx); err != nil {
		c.logger.ErrorCtx(ctx, "Database health check failed", zap.Error(err))
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(&HealthResponse{
			Status:   statusError,
			Database: statusError,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(&HealthResponse{
		Status:   statusOk,
		Database: statusOk,
	})
}
