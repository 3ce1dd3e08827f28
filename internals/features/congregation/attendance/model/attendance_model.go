package model

import (
	"time"

	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
)

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

func IsValidStatus(s string) bool {
	return s == StatusPresent || s == StatusLate || s == StatusAbsent
}

// AttendanceModel: satu baris per pasangan (member, schedule).
// Keunikan dijaga lewat logika upsert, bukan constraint.
type AttendanceModel struct {
	AttendanceID uint `gorm:"primaryKey;column:attendance_id" json:"attendance_id"`

	MemberID uint                     `gorm:"not null;column:attendance_member_id" json:"attendance_member_id"`
	Member   *memberModel.MemberModel `gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:RESTRICT" json:"member,omitempty"`

	ScheduleID uint                         `gorm:"not null;column:attendance_schedule_id" json:"attendance_schedule_id"`
	Schedule   *scheduleModel.ScheduleModel `gorm:"foreignKey:ScheduleID;references:ScheduleID;constraint:OnDelete:RESTRICT" json:"schedule,omitempty"`

	Status     string    `gorm:"not null;column:attendance_status" json:"attendance_status"`
	RecordedAt time.Time `gorm:"not null;column:attendance_recorded_at" json:"attendance_recorded_at"`
	Notes      *string   `gorm:"column:attendance_notes" json:"attendance_notes,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
