package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	attendanceController "gerejaku_backend/internals/features/congregation/attendance/controller"
	groupController "gerejaku_backend/internals/features/congregation/groups/controller"
	memberController "gerejaku_backend/internals/features/congregation/members/controller"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

// AttendanceRoutes memasang halaman kehadiran + aksi pencatatan.
// add-member dan add-group ikut di sini karena dipanggil dari halaman
// kehadiran, bukan dari admin CRUD.
func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)
	memberCtrl := memberController.NewMemberController(db)
	groupCtrl := groupController.NewGroupController(db)

	attendance := app.Group("/api/attendance", authMw.AuthMiddleware(db))

	attendance.Get("/",
		authMw.RequireCapability(constants.CapAttendanceRead),
		ctrl.Index)

	attendance.Post("/mark",
		authMw.RequireCapability(constants.CapAttendanceWrite),
		ctrl.Mark)

	attendance.Post("/add-member",
		authMw.RequireCapability(constants.CapMembersAdd),
		memberCtrl.AddMember)

	attendance.Post("/add-group",
		authMw.RequireCapability(constants.CapGroupsAdd),
		groupCtrl.AddGroup)
}
