// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "medlearn_backend/internals/route/details"
	authMiddleware "medlearn_backend/internals/middlewares/auth"
	userModel "medlearn_backend/internals/features/users/user/model"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC (catalog) =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/u")
	routeDetails.BillingPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())
	routeDetails.BillingUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(userModel.RoleAdmin),
	)
	routeDetails.ContentAdminRoutes(admin, db)
	routeDetails.BillingAdminRoutes(admin, db)
	routeDetails.AccountAdminRoutes(admin, db)

	// ===================== DOCTOR =====================
	log.Println("[INFO] Setting up DOCTOR group...")
	doctor := app.Group("/api/doctor",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(userModel.RoleDoctor, userModel.RoleAdmin),
	)
	routeDetails.MediaDoctorRoutes(doctor, db)
}
