package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/congregation/attendance/dto"
	attendanceModel "gerejaku_backend/internals/features/congregation/attendance/model"
	"gerejaku_backend/internals/features/congregation/attendance/service"
	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
	helper "gerejaku_backend/internals/helpers"
)

const (
	TabMembers        = "Members"
	TabPositionHolder = "PositionHolder"
	TabGroupName      = "GroupName"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// GET /api/attendance?schedule_id&filter_group_id&filter_position&tab
// Dispatch view per tab; agregat dihitung segar per request.
func (ac *AttendanceController) Index(c *fiber.Ctx) error {
	var allSchedules []scheduleModel.ScheduleModel
	if err := ac.DB.Preload("Group").
		Order("schedule_date DESC").
		Find(&allSchedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jadwal")
	}

	resp := dto.IndexResponse{
		AllSchedules: allSchedules,
		Tab:          c.Query("tab", TabMembers),
	}

	var schedule *scheduleModel.ScheduleModel
	if raw := strings.TrimSpace(c.Query("schedule_id")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
		}
		var s scheduleModel.ScheduleModel
		if err := ac.DB.Preload("Group").First(&s, "schedule_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		schedule = &s
		resp.Schedule = schedule

		var attendances []attendanceModel.AttendanceModel
		if err := ac.DB.Where("attendance_schedule_id = ?", s.ScheduleID).
			Find(&attendances).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil catatan kehadiran")
		}
		resp.Attendances = attendances
	}

	members, err := service.ApplicableMembers(ac.DB, schedule)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}
	resp.Positions = service.Positions(members)

	var filterGroupID *uint
	if raw := strings.TrimSpace(c.Query("filter_group_id")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid filter group id")
		}
		gid := uint(id)
		filterGroupID = &gid
	}
	filtered := service.FilterMembers(members, filterGroupID, strings.TrimSpace(c.Query("filter_position")))

	switch resp.Tab {
	case TabPositionHolder:
		resp.Members = service.PositionHolders(filtered)
	case TabGroupName:
		var groups []groupModel.GroupModel
		if err := ac.DB.Order("group_id ASC").Find(&groups).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grup")
		}
		resp.Groups = service.GroupSummaries(groups, filtered)
	default:
		resp.Tab = TabMembers
		resp.Members = filtered
	}

	return helper.JsonOK(c, "", resp)
}

// POST /api/attendance/mark — upsert status (last write wins).
func (ac *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	row, err := service.MarkAttendance(ac.DB, req.ScheduleID, req.MemberID, req.Status)
	switch {
	case err == nil:
		return helper.JsonOK(c, "Kehadiran tercatat", row)
	case errors.Is(err, service.ErrScheduleNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	case errors.Is(err, service.ErrMemberNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	case errors.Is(err, service.ErrInvalidStatus):
		return helper.JsonValidationError(c, map[string][]string{"status": {"must be present, late, or absent"}})
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat kehadiran")
	}
}
