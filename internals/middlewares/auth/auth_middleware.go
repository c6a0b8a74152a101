package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"earsip_backend/internals/configs"
	helper "earsip_backend/internals/helpers"
)

// Kunci locals identitas hasil validasi token.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalUserRole = "user_role"
)

// AuthMiddleware memvalidasi bearer token di satu boundary (parse + signature
// + expiry lewat helper.VerifyToken) lalu menempelkan identitas ke locals
// untuk atribusi audit log di controller.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Tidak ada token, otorisasi gagal")
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := helper.VerifyToken(tokenString, secret)
		if err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid, otorisasi gagal")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalUserRole, claims.Role)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", fiber.ErrUnauthorized
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", fiber.ErrUnauthorized
	}
	return token, nil
}
