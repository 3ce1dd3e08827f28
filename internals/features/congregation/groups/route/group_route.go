package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/congregation/groups/controller"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

func GroupRoutes(app *fiber.App, db *gorm.DB) {
	groupController := controller.NewGroupController(db)

	groups := app.Group("/api/groups", authMw.AuthMiddleware(db))

	groups.Get("/",
		authMw.RequireCapability(constants.CapGroupsRead),
		groupController.List)

	// CRUD grup hanya administrator.
	groups.Post("/",
		authMw.RequireCapability(constants.CapGroupsWrite),
		groupController.Create)
	groups.Put("/:id",
		authMw.RequireCapability(constants.CapGroupsWrite),
		groupController.Update)
	groups.Delete("/:id",
		authMw.RequireCapability(constants.CapGroupsWrite),
		groupController.Delete)
}
