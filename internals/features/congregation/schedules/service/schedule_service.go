package service

import (
	"errors"

	"gorm.io/gorm"

	attendanceModel "gerejaku_backend/internals/features/congregation/attendance/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
)

var (
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrScheduleHasAttendance = errors.New("schedule still has attendance records")
)

// DeleteSchedule menolak penghapusan selama masih ada catatan kehadiran
// yang merujuk ke jadwal tsb.
func DeleteSchedule(db *gorm.DB, id uint) error {
	var schedule scheduleModel.ScheduleModel
	if err := db.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}

	var count int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_schedule_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrScheduleHasAttendance
	}

	return db.Delete(&scheduleModel.ScheduleModel{}, "schedule_id = ?", id).Error
}
