// file: internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"medlearn_backend/internals/configs"
	userModel "medlearn_backend/internals/features/users/user/model"
)

const accessTTL = 7 * 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

// BuildAccessToken signs a 7-day HS256 token carrying the identity claims
// the dashboard decodes for display and the middleware trusts for roles.
func BuildAccessToken(u userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"phone": u.Phone,
		"name":  u.Name,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
