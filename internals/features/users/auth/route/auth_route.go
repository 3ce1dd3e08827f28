package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/users/auth/controller"
	rateLimiter "gerejaku_backend/internals/middlewares"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// PUBLIC — /api/auth
	// ==========================
	public := app.Group("/api/auth")
	public.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// ==========================
	// PROTECTED — /api/auth
	// ==========================
	protected := app.Group("/api/auth", authMw.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)

	// Pendaftaran user hanya untuk administrator.
	protected.Post("/register",
		authMw.RequireCapability(constants.CapUsersRegister),
		authController.Register)
}
