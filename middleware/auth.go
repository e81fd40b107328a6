package middleware

import (
	"fmt"
	"os"
	"strings"

	"adwhey-portal/constants"
	"adwhey-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// VerifyJWT verifies a session token against the configured HMAC secret.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

func hasRole(claims jwt.MapClaims, requiredRoles []string) bool {
	for _, r := range requiredRoles {
		if r == constants.RoleAny {
			return true
		}
	}

	role, _ := claims["role"].(string)
	for _, r := range requiredRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAuthenticated is a middleware that checks for a valid session token
// and one of the required roles. The token comes from the Authorization
// header or, failing that, the access cookie.
func IsAuthenticated(requiredRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string

		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status": "error",
					"error":  "Invalid authorization header format",
				})
			}
			token = tokenParts[1]
		} else {
			token = c.Cookies("access")
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"status": "error",
					"error":  "Authorization token missing",
				})
			}
		}

		claims, err := VerifyJWT(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !hasRole(claims, requiredRoles) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status": "error",
				"error":  "Insufficient permissions",
			})
		}

		c.Locals("user", claims)

		return c.Next()
	}
}

// RequireAuthentication only requires a valid session, any role.
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated([]string{constants.RoleAny})
}

// RequireAdmin requires the admin role.
func RequireAdmin() fiber.Handler {
	return IsAuthenticated([]string{constants.RoleAdmin})
}
