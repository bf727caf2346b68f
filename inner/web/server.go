package web

import (
	"errors"
	"time"

	"github.com/NZpatelK/keyhook-test/inner/common"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// структура веб-сервера
type Server struct {
	App *fiber.App
	// группа публичного API
	GroupApi fiber.Router
	// группа публичного API первой версии
	GroupApiV1 fiber.Router
	// группа непубличного API
	GroupInternal fiber.Router
	// обработчики, которые выполняются перед операциями записи (JWT + роль)
	writeGuards []fiber.Handler
}

// функция-конструктор
func NewServer(cfg common.Config, logger *common.Logger) *Server {

	// создаём новый веб-сервер
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: errorHandler,
	})

	// Middleware для восстановления от паники
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Middleware для добавления уникального ID к каждому запросу
	app.Use(requestid.New())

	app.Use(CustomMiddleware(logger.Logger))

	groupInternal := app.Group("/internal")

	// Middleware для внутренних маршрутов
	groupInternal.Use(func(c *fiber.Ctx) error {
		c.Set("X-Internal-API", "true")
		return c.Next()
	})

	// создаём группу "/api"
	groupApi := app.Group("/api")

	// создаём подгруппу "api/v1"
	groupApiV1 := groupApi.Group("/v1")

	// Middleware для API v1
	groupApiV1.Use(func(c *fiber.Ctx) error {
		c.Set("X-API-Version", "v1")
		return c.Next()
	})

	var writeGuards []fiber.Handler
	if cfg.AuthEnabled() {
		writeGuards = append(writeGuards, AuthMiddleware(cfg, logger), RequireRole(DirectoryAdmin, logger))
		logger.Info("Write operations require role", zap.String("role", DirectoryAdmin))
	}

	return &Server{
		App:           app,
		GroupApi:      groupApi,
		GroupApiV1:    groupApiV1,
		GroupInternal: groupInternal,
		writeGuards:   writeGuards,
	}
}

// Protected возвращает цепочку обработчиков операции записи: проверки доступа, затем сам обработчик
func (s *Server) Protected(handler fiber.Handler) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(s.writeGuards)+1)
	handlers = append(handlers, s.writeGuards...)
	return append(handlers, handler)
}

// errorHandler отдаёт ошибки fiber (404, 405, паники) в том же конверте, что и остальные ответы
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return common.ErrResponse(ctx, code, err.Error())
}

func CustomMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Логирование начала запроса
		logger.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("query", string(c.Request().URI().QueryString())),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		)
		if c.Method() == fiber.MethodPost {
			logger.Debug("Request body", common.ParseRequestBody(c.Body())...)
		}

		// Выполняется следующий handler
		err := c.Next()

		// Логирование завершения запроса
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		}
		if requestID, ok := c.Locals("requestid").(string); ok {
			fields = append(fields, zap.String("request_id", requestID))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logger.Info("Request completed", fields...)

		return err
	}
}
