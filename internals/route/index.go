package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "gerejaku_backend/internals/features/congregation/attendance/route"
	groupRoute "gerejaku_backend/internals/features/congregation/groups/route"
	memberRoute "gerejaku_backend/internals/features/congregation/members/route"
	scheduleRoute "gerejaku_backend/internals/features/congregation/schedules/route"
	authRoute "gerejaku_backend/internals/features/users/auth/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH / USER BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== CONGREGATION =====================
	log.Println("[INFO] Mounting Member routes...")
	memberRoute.MemberRoutes(app, db)

	log.Println("[INFO] Mounting Group routes...")
	groupRoute.GroupRoutes(app, db)

	log.Println("[INFO] Mounting Schedule routes...")
	scheduleRoute.ScheduleRoutes(app, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(app, db)
}
