// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "medlearn_backend/internals/features/users/auth/controller"
	authMiddleware "medlearn_backend/internals/middlewares/auth"
	"medlearn_backend/internals/middlewares"
)

// AuthRoutes mounts /login and /google publicly (behind the stricter login
// limiter) and /me behind the JWT middleware.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
