package web

import (
	"github.com/NZpatelK/keyhook-test/inner/common"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// возвращает конфигурацию Swagger UI; OAuth2.0 включается вместе с Keycloak
func GetSwaggerConfig(cfg common.Config) swagger.Config {
	config := swagger.Config{
		// URL для получения OpenAPI спецификации
		URL:          "/swagger/doc.json",
		DeepLinking:  true,
		DocExpansion: "list",
		Title:        cfg.AppName + " API Documentation",

		DefaultModelsExpandDepth: 1,
		DefaultModelExpandDepth:  1,
		DefaultModelRendering:    "model",
	}
	if cfg.KeycloakJwkUrl != "" {
		config.OAuth = &swagger.OAuthConfig{
			AppName:                           cfg.AppName,
			ClientId:                          "directory-swagger-ui",
			Scopes:                            []string{"openid", "profile"},
			UsePkceWithAuthorizationCodeGrant: true,
		}
	}
	return config
}

// инициализирует Swagger UI
func InitSwagger(app *fiber.App, cfg common.Config) {
	app.Get("/swagger/*", swagger.New(GetSwaggerConfig(cfg)))
}
