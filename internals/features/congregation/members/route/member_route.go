package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/congregation/members/controller"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

func MemberRoutes(app *fiber.App, db *gorm.DB) {
	memberController := controller.NewMemberController(db)

	members := app.Group("/api/members", authMw.AuthMiddleware(db))

	members.Get("/",
		authMw.RequireCapability(constants.CapMembersRead),
		memberController.List)

	members.Put("/:id",
		authMw.RequireCapability(constants.CapMembersWrite),
		memberController.Update)

	members.Post("/bulk-import",
		authMw.RequireCapability(constants.CapMembersImport),
		memberController.BulkImport)
}
