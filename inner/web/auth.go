package web

import (
	"slices"

	"github.com/NZpatelK/keyhook-test/inner/common"

	jwtMiddleware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	JwtKey         = "jwt"
	DirectoryAdmin = "DIRECTORY_ADMIN"
)

type DirectoryClaims struct {
	RealmAccess RealmAccessClaims `json:"realm_access"`
	jwt.RegisteredClaims
}

type RealmAccessClaims struct {
	Roles []string `json:"roles"`
}

// middleware для JWT аутентификации: HS256 ключ из конфига или JWKS Keycloak
func AuthMiddleware(cfg common.Config, logger *common.Logger) fiber.Handler {
	config := jwtMiddleware.Config{
		ContextKey:   JwtKey,
		ErrorHandler: createJwtErrorHandler(logger),
		Claims:       &DirectoryClaims{},
	}
	if cfg.JwtSigningKey != "" {
		config.SigningKey = jwtMiddleware.SigningKey{
			JWTAlg: jwtMiddleware.HS256,
			Key:    []byte(cfg.JwtSigningKey),
		}
	} else {
		config.JWKSetURLs = []string{cfg.KeycloakJwkUrl}
	}
	return jwtMiddleware.New(config)
}

// middleware для проверки конкретной роли
func RequireRole(requiredRole string, logger *common.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles := GetUserRoles(c)

		if !slices.Contains(roles, requiredRole) {
			logger.WarnCtx(c, "Access denied: insufficient role",
				zap.String("required_role", requiredRole),
				zap.Strings("user_roles", roles),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("ip", c.IP()))

			return common.ErrResponse(c, fiber.StatusForbidden, "Insufficient permissions")
		}

		logger.DebugCtx(c, "Role check passed",
			zap.String("required_role", requiredRole),
			zap.String("path", c.Path()))

		return c.Next()
	}
}

// извлекает роли пользователя из JWT токена; без токена ролей нет
func GetUserRoles(c *fiber.Ctx) []string {
	token, ok := c.Locals(JwtKey).(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*DirectoryClaims)
	if !ok {
		return nil
	}
	return claims.RealmAccess.Roles
}

func createJwtErrorHandler(logger *common.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		logger.ErrorCtx(ctx, "authentication failed",
			zap.Error(err),
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()))

		// Если токен не может быть прочитан, то возвращаем 401
		return common.ErrResponse(ctx, fiber.StatusUnauthorized, err.Error())
	}
}
