package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/users/auth/service"
	userModel "gerejaku_backend/internals/features/users/auth/model"
	helper "gerejaku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

// Logout: token stateless, server cukup mengonfirmasi supaya client membuang token.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "user_id = ?", userUUID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"user_id":        user.ID,
		"user_name":      user.UserName,
		"user_email":     user.Email,
		"user_full_name": user.FullName,
		"user_role":      user.Role,
		"user_member_id": user.MemberID,
	})
}
