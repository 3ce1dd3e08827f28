package service

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attendanceModel "gerejaku_backend/internals/features/congregation/attendance/model"
	groupModel "gerejaku_backend/internals/features/congregation/groups/model"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&groupModel.GroupModel{},
		&memberModel.MemberModel{},
		&scheduleModel.ScheduleModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedFixture(t *testing.T, db *gorm.DB) (scheduleModel.ScheduleModel, memberModel.MemberModel) {
	t.Helper()
	male := groupModel.GenderMale
	group := groupModel.GroupModel{Name: "Adult - Male", Type: groupModel.GroupTypeAdult, GenderRestriction: &male}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("seed group: %v", err)
	}
	member := memberModel.MemberModel{
		FirstName: "John", LastName: "Smith",
		Gender: groupModel.GenderMale, GroupID: group.GroupID,
		DateJoined: time.Now(), IsActive: true,
	}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	schedule := scheduleModel.ScheduleModel{Title: "Sunday Service", Date: time.Now()}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return schedule, member
}

func TestMarkAttendanceCreatesRow(t *testing.T) {
	db := openTestDB(t)
	schedule, member := seedFixture(t, db)

	row, err := MarkAttendance(db, schedule.ScheduleID, member.MemberID, attendanceModel.StatusPresent)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if row.Status != attendanceModel.StatusPresent {
		t.Errorf("status = %q, want present", row.Status)
	}

	var count int64
	db.Model(&attendanceModel.AttendanceModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("row count = %d, want 1", count)
	}
}

func TestMarkAttendanceUpsertsSamePair(t *testing.T) {
	db := openTestDB(t)
	schedule, member := seedFixture(t, db)

	first, err := MarkAttendance(db, schedule.ScheduleID, member.MemberID, attendanceModel.StatusPresent)
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}

	// Mundurkan recorded_at supaya perbandingan timestamp deterministik.
	past := time.Now().Add(-1 * time.Hour)
	if err := db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_id = ?", first.AttendanceID).
		Update("attendance_recorded_at", past).Error; err != nil {
		t.Fatalf("rewind: %v", err)
	}

	second, err := MarkAttendance(db, schedule.ScheduleID, member.MemberID, attendanceModel.StatusLate)
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}

	var count int64
	db.Model(&attendanceModel.AttendanceModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("row count = %d, want exactly 1 after remark", count)
	}
	if second.AttendanceID != first.AttendanceID {
		t.Errorf("remark created new row %d, want update of %d", second.AttendanceID, first.AttendanceID)
	}
	if second.Status != attendanceModel.StatusLate {
		t.Errorf("status = %q, want late", second.Status)
	}
	if !second.RecordedAt.After(past) {
		t.Errorf("recorded_at %v should be after %v", second.RecordedAt, past)
	}
}

func TestMarkAttendanceSameStatusConverges(t *testing.T) {
	db := openTestDB(t)
	schedule, member := seedFixture(t, db)

	for i := 0; i < 3; i++ {
		if _, err := MarkAttendance(db, schedule.ScheduleID, member.MemberID, attendanceModel.StatusAbsent); err != nil {
			t.Fatalf("mark %d: %v", i, err)
		}
	}

	var rows []attendanceModel.AttendanceModel
	db.Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}
	if rows[0].Status != attendanceModel.StatusAbsent {
		t.Errorf("status = %q, want absent", rows[0].Status)
	}
}

func TestMarkAttendanceErrors(t *testing.T) {
	db := openTestDB(t)
	schedule, member := seedFixture(t, db)

	if _, err := MarkAttendance(db, schedule.ScheduleID, member.MemberID, "asleep"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("invalid status: got %v", err)
	}
	if _, err := MarkAttendance(db, 999, member.MemberID, attendanceModel.StatusPresent); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("missing schedule: got %v", err)
	}
	if _, err := MarkAttendance(db, schedule.ScheduleID, 999, attendanceModel.StatusPresent); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("missing member: got %v", err)
	}
}
