package model

import (
	"time"

	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
)

type MemberModel struct {
	MemberID uint `gorm:"primaryKey;column:member_id" json:"member_id"`

	FirstName string `gorm:"not null;column:member_first_name" json:"member_first_name"`
	LastName  string `gorm:"not null;column:member_last_name" json:"member_last_name"`
	Gender    string `gorm:"not null;column:member_gender" json:"member_gender"`

	// Setiap anggota wajib punya grup; grup tidak bisa dihapus selama masih dirujuk.
	GroupID uint                   `gorm:"not null;column:member_group_id" json:"member_group_id"`
	Group   *groupModel.GroupModel `gorm:"foreignKey:GroupID;references:GroupID;constraint:OnDelete:RESTRICT" json:"group,omitempty"`

	// Nomor anggota (mis. M05-xxxxx); keunikan hanya dicek saat import.
	MemberNumber *string `gorm:"column:member_number" json:"member_number,omitempty"`
	Position     *string `gorm:"column:member_position" json:"member_position,omitempty"`

	DateJoined time.Time `gorm:"not null;column:member_date_joined" json:"member_date_joined"`

	// Tanpa default di kolom: nilai false dari pembuat record harus
	// tersimpan apa adanya, jangan ditelan default saat INSERT.
	IsActive bool `gorm:"not null;column:member_is_active" json:"member_is_active"`
}

func (MemberModel) TableName() string { return "members" }

func (m *MemberModel) FullName() string {
	return m.FirstName + " " + m.LastName
}
