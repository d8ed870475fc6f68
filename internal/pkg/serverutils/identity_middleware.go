package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityMiddleware extracts the caller's email from an optional bearer
// token. Unlike a gate, a missing or invalid token does not reject the
// request: the caller just proceeds as a guest with no identity. Identity
// only widens the daily message cap and tags the exchange log.
func IdentityMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals("caller_identity", "")

	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Next()
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ctx.Next()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Next()
	}

	if email, ok := claims["email"].(string); ok {
		ctx.Locals("caller_identity", email)
	}

	return ctx.Next()
}

// CallerIdentity reads the identity set by IdentityMiddleware; empty means guest.
func CallerIdentity(ctx *fiber.Ctx) string {
	if identity, ok := ctx.Locals("caller_identity").(string); ok {
		return identity
	}
	return ""
}
