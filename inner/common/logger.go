package common

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger структура логгера
type Logger struct {
	*zap.Logger
}

// NewLogger функция-конструктор логгера
func NewLogger(cfg Config) *Logger {
	var zapEncoderCfg = zapcore.EncoderConfig{
		TimeKey:          "timestamp",
		LevelKey:         "level",
		NameKey:          "logger",
		CallerKey:        "caller",
		FunctionKey:      zapcore.OmitKey,
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.LowercaseLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000000"),
		EncodeDuration:   zapcore.MillisDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: "  ",
	}
	// в режиме разработки пишем читаемые строки, иначе JSON
	var encoding = "json"
	if cfg.LogDevelopMode {
		encoding = "console"
		zapEncoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	var zapCfg = zap.Config{
		Level:       zap.NewAtomicLevelAt(parseLogLevel(cfg.LogLevel)),
		Development: cfg.LogDevelopMode,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:      encoding,
		EncoderConfig: zapEncoderCfg,
		// логируем сообщения и ошибки в консоль
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stdout"},
	}
	var logger = zap.Must(zapCfg.Build())
	logger.Info("logger construction succeeded",
		zap.String("app", cfg.AppName),
		zap.String("version", cfg.AppVersion))
	var created = &Logger{logger}
	created.setNewFiberZapLogger()
	return created
}

// setNewFiberZapLogger устанавливает логгер для fiber
func (l *Logger) setNewFiberZapLogger() {
	var fiberzapLogger = fiberzap.NewLogger(fiberzap.LoggerConfig{
		SetLogger: l.Logger,
	})
	log.SetLogger(fiberzapLogger)
}

// ParseRequestBody парсит тело запроса на создание сотрудника и возвращает поля для логирования
func ParseRequestBody(bodyData []byte) []zap.Field {
	var requestData map[string]any
	if err := json.Unmarshal(bodyData, &requestData); err != nil {
		// Если не удается распарсить JSON, логируем как есть
		return []zap.Field{zap.String("body", string(bodyData))}
	}

	// JSON:API документ: атрибуты лежат в data.attributes
	if data, ok := requestData["data"].(map[string]any); ok {
		if attributes, ok := data["attributes"].(map[string]any); ok {
			requestData = attributes
		}
	}

	var fields []zap.Field
	for _, key := range []string{"first_name", "last_name", "position", "department_name"} {
		if value, ok := requestData[key].(string); ok {
			fields = append(fields, zap.String(key, value))
		}
	}
	if age, ok := requestData["age"].(float64); ok {
		fields = append(fields, zap.Int("age", int(age)))
	}

	return fields
}

// parseLogLevel парсит уровень логирования из строки; неизвестные значения дают info
func parseLogLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zapcore.InfoLevel
	}
	return parsed
}

// withRequestID дополняет поля записи идентификатором запроса из контекста fiber
func withRequestID(ctx *fiber.Ctx, fields []zap.Field) []zap.Field {
	requestID := ctx.Get(fiber.HeaderXRequestID)
	if requestID == "" {
		if id, ok := ctx.Locals("requestid").(string); ok {
			requestID = id
		}
	}
	if requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	return fields
}

func (l *Logger) InfoCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Info(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) DebugCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Debug(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) WarnCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Warn(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) ErrorCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Error(msg, withRequestID(ctx, fields)...)
}
