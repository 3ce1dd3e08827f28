package model

import (
	"time"

	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
)

type ScheduleModel struct {
	ScheduleID uint `gorm:"primaryKey;column:schedule_id" json:"schedule_id"`

	Title       string    `gorm:"not null;column:schedule_title" json:"schedule_title"`
	Date        time.Time `gorm:"type:date;not null;column:schedule_date" json:"schedule_date"`
	Description *string   `gorm:"column:schedule_description" json:"schedule_description,omitempty"`

	// Nil = jadwal berlaku untuk semua anggota aktif.
	// Grup yang dihapus membuat kolom ini jadi NULL, bukan gagal.
	GroupID *uint                  `gorm:"column:schedule_group_id" json:"schedule_group_id,omitempty"`
	Group   *groupModel.GroupModel `gorm:"foreignKey:GroupID;references:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`

	CreatedAt time.Time `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
}

func (ScheduleModel) TableName() string { return "schedules" }
