package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserName string `gorm:"size:50;not null;unique;column:user_name" json:"user_name"`
	Email    string `gorm:"size:255;not null;unique;column:user_email" json:"user_email"`
	FullName string `gorm:"size:100;not null;column:user_full_name" json:"user_full_name"`
	Password string `gorm:"not null;column:user_password" json:"-"`

	// admin | team_leader | user
	Role string `gorm:"size:20;not null;column:user_role" json:"user_role"`

	// Link opsional ke data anggota jemaat.
	MemberID *uint `gorm:"column:user_member_id" json:"user_member_id,omitempty"`

	// Tanpa default kolom; pembuat user wajib mengeset nilai ini eksplisit.
	IsActive bool `gorm:"not null;column:user_is_active" json:"user_is_active"`

	CreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
