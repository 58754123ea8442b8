package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware rejects requests without a valid bearer token.
func JwtMiddleware(ctx *fiber.Ctx) error {
	userID, ok := parseBearer(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing or invalid token"})
	}
	ctx.Locals("user_id", userID)
	return ctx.Next()
}

// OptionalJwtMiddleware attaches the identity when a valid token is present
// and lets anonymous requests through. The assistant endpoint uses this:
// browsing the catalog needs no account, finalizing a quote does.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	if userID, ok := parseBearer(ctx); ok {
		ctx.Locals("user_id", userID)
	}
	return ctx.Next()
}

func parseBearer(ctx *fiber.Ctx) (string, bool) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return "", false
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
