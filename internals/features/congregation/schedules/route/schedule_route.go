package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/congregation/schedules/controller"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

func ScheduleRoutes(app *fiber.App, db *gorm.DB) {
	scheduleController := controller.NewScheduleController(db)

	schedules := app.Group("/api/schedules", authMw.AuthMiddleware(db))

	schedules.Get("/",
		authMw.RequireCapability(constants.CapSchedulesRead),
		scheduleController.List)

	// CRUD jadwal hanya administrator.
	schedules.Post("/",
		authMw.RequireCapability(constants.CapSchedulesWrite),
		scheduleController.Create)
	schedules.Put("/:id",
		authMw.RequireCapability(constants.CapSchedulesWrite),
		scheduleController.Update)
	schedules.Delete("/:id",
		authMw.RequireCapability(constants.CapSchedulesWrite),
		scheduleController.Delete)
}
