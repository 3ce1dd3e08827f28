package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	attendanceModel "gerejaku_backend/internals/features/congregation/attendance/model"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrInvalidStatus    = errors.New("invalid attendance status")
)

// MarkAttendance meng-upsert status kehadiran satu anggota untuk satu jadwal.
// Baris yang sudah ada ditimpa status + waktu pencatatannya (last write wins);
// kalau belum ada, dibuat baru. Hasil akhirnya selalu satu baris per pasangan.
func MarkAttendance(db *gorm.DB, scheduleID, memberID uint, status string) (*attendanceModel.AttendanceModel, error) {
	if !attendanceModel.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var schedule scheduleModel.ScheduleModel
	if err := db.First(&schedule, "schedule_id = ?", scheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	var member memberModel.MemberModel
	if err := db.First(&member, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	var existing attendanceModel.AttendanceModel
	err := db.Where("attendance_schedule_id = ? AND attendance_member_id = ?", scheduleID, memberID).
		First(&existing).Error
	switch {
	case err == nil:
		existing.Status = status
		existing.RecordedAt = time.Now()
		if err := db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := attendanceModel.AttendanceModel{
			ScheduleID: scheduleID,
			MemberID:   memberID,
			Status:     status,
			RecordedAt: time.Now(),
		}
		if err := db.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	default:
		return nil, err
	}
}
