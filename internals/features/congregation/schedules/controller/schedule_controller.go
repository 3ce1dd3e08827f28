package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	"gerejaku_backend/internals/features/congregation/schedules/dto"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
	"gerejaku_backend/internals/features/congregation/schedules/service"
	helper "gerejaku_backend/internals/helpers"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db, Validate: validator.New()}
}

// GET /api/schedules — urut tanggal terbaru dulu.
func (sc *ScheduleController) List(c *fiber.Ctx) error {
	var schedules []scheduleModel.ScheduleModel
	if err := sc.DB.Preload("Group").
		Order("schedule_date DESC").
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jadwal")
	}
	return helper.JsonOK(c, "", schedules)
}

// POST /api/schedules
func (sc *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"schedule_date": {"format tanggal harus YYYY-MM-DD"}})
	}

	if req.GroupID != nil {
		var group groupModel.GroupModel
		if err := sc.DB.First(&group, "group_id = ?", *req.GroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	schedule := scheduleModel.ScheduleModel{
		Title:       req.Title,
		Date:        date,
		Description: req.Description,
		GroupID:     req.GroupID,
	}
	if err := sc.DB.Create(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jadwal")
	}
	return helper.JsonCreated(c, "Jadwal berhasil dibuat", schedule)
}

// PUT /api/schedules/:id
func (sc *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := sc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var schedule scheduleModel.ScheduleModel
	if err := sc.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.Title != nil {
		schedule.Title = *req.Title
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{"schedule_date": {"format tanggal harus YYYY-MM-DD"}})
		}
		schedule.Date = date
	}
	if req.Description != nil {
		schedule.Description = req.Description
	}
	if req.ClearGroup {
		schedule.GroupID = nil
	} else if req.GroupID != nil {
		var group groupModel.GroupModel
		if err := sc.DB.First(&group, "group_id = ?", *req.GroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		schedule.GroupID = req.GroupID
	}

	if err := sc.DB.Save(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
	}
	return helper.JsonUpdated(c, "Jadwal berhasil diperbarui", schedule)
}

// DELETE /api/schedules/:id — ditolak selama masih ada catatan kehadiran.
func (sc *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	switch err := service.DeleteSchedule(sc.DB, uint(id)); {
	case err == nil:
		return helper.JsonDeleted(c, "Jadwal berhasil dihapus", nil)
	case errors.Is(err, service.ErrScheduleNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	case errors.Is(err, service.ErrScheduleHasAttendance):
		return helper.JsonConflict(c, "schedule_id", "Jadwal masih punya catatan kehadiran dan tidak bisa dihapus")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
}
