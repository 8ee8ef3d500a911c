// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "sekolahku_backend/internals/features/users/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public routes...")
	app.Get("/health", healthHandler)
	userRoute.AuthRoutes(app.Group("/api"), db)

	// ===================== USER (/api/u) =====================
	log.Println("[INFO] Setting up user routes...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	routeDetails.UserRoutes(user, db)

	// ===================== ADMIN (/api/a) =====================
	log.Println("[INFO] Setting up admin routes...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())
	routeDetails.AdminRoutes(admin, db)
}

func healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(startTime).String(),
	})
}
