package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultAppAddr = ":8080"

// Общая конфигурация всего приложения
type Config struct {
	DbDriverName   string `validate:"required"`
	Dsn            string `validate:"required"`
	AppName        string `validate:"required"`
	AppVersion     string `validate:"required"`
	AppAddr        string
	LogLevel       string
	LogDevelopMode bool
	SslSert        string `validate:"required_with=SslKey"`
	SslKey         string `validate:"required_with=SslSert"`
	// если ни один из двух параметров не задан, создание сотрудников не требует токена
	KeycloakJwkUrl string `validate:"omitempty,url"`
	JwtSigningKey  string
	SeedEmployees  int `validate:"gte=0"`
}

// Получение конфигурации из .env файла или переменных окружения
func GetConfig(envFile string) Config {
	// отсутствие .env файла не ошибка: значения могут прийти из окружения
	_ = godotenv.Load(envFile)
	var cfg = Config{
		DbDriverName:   os.Getenv("DB_DRIVER_NAME"),
		Dsn:            os.Getenv("DB_DSN"),
		AppName:        os.Getenv("APP_NAME"),
		AppVersion:     os.Getenv("APP_VERSION"),
		AppAddr:        os.Getenv("APP_ADDR"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogDevelopMode: parseBool(os.Getenv("LOG_DEVELOP_MODE")),
		SslSert:        os.Getenv("SSL_SERT"),
		SslKey:         os.Getenv("SSL_KEY"),
		KeycloakJwkUrl: os.Getenv("KEYCLOAK_JWK_URL"),
		JwtSigningKey:  os.Getenv("JWT_SIGNING_KEY"),
		SeedEmployees:  parseInt(os.Getenv("SEED_EMPLOYEES"), 1000),
	}
	if cfg.AppAddr == "" {
		cfg.AppAddr = defaultAppAddr
	}
	if err := validator.New().Struct(cfg); err != nil {
		panic(fmt.Sprintf("config validation error: %v", err))
	}
	return cfg
}

// AuthEnabled сообщает, защищены ли операции записи JWT токеном
func (cfg Config) AuthEnabled() bool {
	return cfg.KeycloakJwkUrl != "" || cfg.JwtSigningKey != ""
}

// TlsEnabled сообщает, нужно ли поднимать сервер с TLS
func (cfg Config) TlsEnabled() bool {
	return cfg.SslSert != "" && cfg.SslKey != ""
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	return err == nil && parsed
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
