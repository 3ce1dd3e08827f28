package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	"gerejaku_backend/internals/features/congregation/members/dto"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	"gerejaku_backend/internals/features/congregation/members/service"
	helper "gerejaku_backend/internals/helpers"
)

type MemberController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db, Validate: validator.New()}
}

// GET /api/members — anggota aktif, urut nama belakang lalu depan.
func (mc *MemberController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := mc.DB.Model(&memberModel.MemberModel{}).Where("member_is_active = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	var members []memberModel.MemberModel
	if err := q.Preload("Group").
		Order("member_last_name ASC, member_first_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	return helper.JsonList(c, "", members, helper.BuildPagination(total, paging))
}

// POST /api/attendance/add-member — tambah anggota dari halaman kehadiran.
func (mc *MemberController) AddMember(c *fiber.Ctx) error {
	var req dto.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := mc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	tokens := strings.Fields(strings.TrimSpace(req.FullName))
	if len(tokens) < 2 {
		return helper.JsonValidationError(c, map[string][]string{
			"full_name": {"nama harus terdiri dari nama depan dan belakang"},
		})
	}
	firstName := strings.Join(tokens[:len(tokens)-1], " ")
	lastName := tokens[len(tokens)-1]

	var group groupModel.GroupModel
	if err := mc.DB.First(&group, "group_id = ?", req.GroupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	member := memberModel.MemberModel{
		FirstName:    firstName,
		LastName:     lastName,
		Gender:       req.Gender,
		GroupID:      group.GroupID,
		MemberNumber: req.LifeNumber,
		Position:     req.Position,
		DateJoined:   time.Now(),
		IsActive:     true,
	}
	if err := mc.DB.Create(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}

	return helper.JsonCreated(c, "Anggota berhasil ditambahkan", member)
}

// PUT /api/members/:id
func (mc *MemberController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := mc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var member memberModel.MemberModel
	if err := mc.DB.First(&member, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if req.GroupID != nil {
		var group groupModel.GroupModel
		if err := mc.DB.First(&group, "group_id = ?", *req.GroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Group not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		member.GroupID = group.GroupID
	}
	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Gender != nil {
		member.Gender = *req.Gender
	}
	if req.MemberNumber != nil {
		member.MemberNumber = req.MemberNumber
	}
	if req.Position != nil {
		member.Position = req.Position
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := mc.DB.Save(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui anggota")
	}
	return helper.JsonUpdated(c, "Anggota berhasil diperbarui", member)
}

// POST /api/members/bulk-import — admin only.
func (mc *MemberController) BulkImport(c *fiber.Ctx) error {
	var req dto.BulkImportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(req.MemberData) == "" {
		return helper.JsonValidationError(c, map[string][]string{
			"member_data": {"please provide member data"},
		})
	}

	result, err := service.ImportMembers(mc.DB, req.MemberData, req.DefaultGroupID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses import")
	}

	return helper.JsonOK(c,
		"Import selesai", fiber.Map{
			"added":         result.Added,
			"skipped":       result.Skipped,
			"skipped_lines": result.SkippedLines,
		})
}
