package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"gerejaku_backend/internals/configs"
	userModel "gerejaku_backend/internals/features/users/auth/model"
)

const accessTTLDefault = 24 * time.Hour

// CreateAccessToken menandatangani JWT HS256 berisi klaim identitas dasar.
func CreateAccessToken(user *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
