package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/users/auth/dto"
	userModel "gerejaku_backend/internals/features/users/auth/model"
	helper "gerejaku_backend/internals/helpers"
)

var validate = validator.New()

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_name = ?", req.UserName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := CreateAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user": fiber.Map{
			"user_id":        user.ID,
			"user_name":      user.UserName,
			"user_email":     user.Email,
			"user_full_name": user.FullName,
			"user_role":      user.Role,
		},
	})
}

// ========================== REGISTER (admin only) ==========================
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if !constants.IsValidRole(req.AccessType) {
		return helper.JsonValidationError(c, map[string][]string{"access_type": {"invalid role"}})
	}

	// Keunikan username/email dicek eksplisit, dilaporkan per field.
	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_name = ?", req.UserName).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if count > 0 {
		return helper.JsonConflict(c, "user_name", "Username sudah terpakai")
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if count > 0 {
		return helper.JsonConflict(c, "email", "Email sudah terpakai")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		FullName: req.FullName,
		Password: string(hashed),
		Role:     req.AccessType,
		MemberID: req.MemberID,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil didaftarkan", fiber.Map{
		"user_id":   user.ID,
		"user_name": user.UserName,
		"user_role": user.Role,
	})
}
