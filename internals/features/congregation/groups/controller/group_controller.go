package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rosterService "gerejaku_backend/internals/features/congregation/attendance/service"
	"gerejaku_backend/internals/features/congregation/groups/dto"
	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	"gerejaku_backend/internals/features/congregation/groups/service"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	helper "gerejaku_backend/internals/helpers"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db, Validate: validator.New()}
}

// GET /api/groups — grup + jumlah anggota + leader hasil inferensi.
func (gc *GroupController) List(c *fiber.Ctx) error {
	var groups []groupModel.GroupModel
	if err := gc.DB.Order("group_id ASC").Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grup")
	}

	var members []memberModel.MemberModel
	if err := gc.DB.Where("member_is_active = ?", true).
		Order("member_last_name ASC, member_first_name ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	return helper.JsonOK(c, "", rosterService.GroupSummaries(groups, members))
}

// POST /api/groups
func (gc *GroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := gc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	taken, err := service.NameTaken(gc.DB, req.Name, 0)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if taken {
		return helper.JsonConflict(c, "group_name", "Nama grup sudah terpakai")
	}

	group := groupModel.GroupModel{
		Name:              req.Name,
		Type:              req.Type,
		GenderRestriction: req.GenderRestriction,
		Description:       req.Description,
	}
	if err := gc.DB.Create(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat grup")
	}
	return helper.JsonCreated(c, "Grup berhasil dibuat", group)
}

// PUT /api/groups/:id
func (gc *GroupController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := gc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var group groupModel.GroupModel
	if err := gc.DB.First(&group, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.Name != nil && *req.Name != group.Name {
		taken, err := service.NameTaken(gc.DB, *req.Name, group.GroupID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if taken {
			return helper.JsonConflict(c, "group_name", "Nama grup sudah terpakai")
		}
		group.Name = *req.Name
	}
	if req.Type != nil {
		group.Type = *req.Type
	}
	if req.GenderRestriction != nil {
		group.GenderRestriction = req.GenderRestriction
	}
	if req.Description != nil {
		group.Description = req.Description
	}

	if err := gc.DB.Save(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui grup")
	}
	return helper.JsonUpdated(c, "Grup berhasil diperbarui", group)
}

// DELETE /api/groups/:id — ditolak selama masih ada anggota.
func (gc *GroupController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	switch err := service.DeleteGroup(gc.DB, uint(id)); {
	case err == nil:
		return helper.JsonDeleted(c, "Grup berhasil dihapus", nil)
	case errors.Is(err, service.ErrGroupNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
	case errors.Is(err, service.ErrGroupHasMembers):
		return helper.JsonConflict(c, "group_id", "Grup masih punya anggota dan tidak bisa dihapus")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus grup")
	}
}

// POST /api/attendance/add-group — buat grup + leader + anggota terpilih.
func (gc *GroupController) AddGroup(c *fiber.Ctx) error {
	var req dto.AddGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := gc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	group, err := service.CreateGroupWithLeader(gc.DB, req.GroupName, req.LeaderID, req.SelectedMembers)
	switch {
	case err == nil:
		return helper.JsonCreated(c, "Grup berhasil dibuat", group)
	case errors.Is(err, service.ErrDuplicateName):
		return helper.JsonConflict(c, "group_name", "Nama grup sudah terpakai")
	case errors.Is(err, service.ErrLeaderNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Leader member not found")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat grup")
	}
}
