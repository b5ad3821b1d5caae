// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const UserIDKey = "user_id"

// ParseUserID validates an HS256 token issued by the identity provider and
// returns its opaque user_id claim.
func ParseUserID(tokenStr, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid claims")
	}
	userId, ok := claims[UserIDKey].(string)
	if !ok || userId == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Token missing user_id")
	}
	return userId, nil
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return ""
	}
	return authHeader[7:]
}

// RequestToken prefers the Authorization header. Browsers cannot set headers
// on websocket handshakes, so upgrades may pass the token as ?token=.
func RequestToken(ctx *fiber.Ctx) string {
	if tokenStr := BearerToken(ctx); tokenStr != "" {
		return tokenStr
	}
	if strings.EqualFold(ctx.Get(fiber.HeaderUpgrade), "websocket") {
		return ctx.Query("token")
	}
	return ""
}

// NewJwtMiddleware protects a route group and stores the caller's user id in
// ctx.Locals(UserIDKey).
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := RequestToken(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		userId, err := ParseUserID(tokenStr, secret)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, err.Error()))
		}

		ctx.Locals(UserIDKey, userId)
		return ctx.Next()
	}
}

// UserID reads the id stored by the middleware.
func UserID(ctx *fiber.Ctx) string {
	userId, _ := ctx.Locals(UserIDKey).(string)
	return userId
}
