package dto

import (
	attendanceModel "gerejaku_backend/internals/features/congregation/attendance/model"
	memberModel "gerejaku_backend/internals/features/congregation/members/model"
	scheduleModel "gerejaku_backend/internals/features/congregation/schedules/model"
)

type MarkAttendanceRequest struct {
	ScheduleID uint   `json:"schedule_id" validate:"required"`
	MemberID   uint   `json:"member_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=present late absent"`
}

// IndexResponse: payload halaman kehadiran. Isi data tergantung tab.
type IndexResponse struct {
	Schedule     *scheduleModel.ScheduleModel      `json:"schedule,omitempty"`
	AllSchedules []scheduleModel.ScheduleModel     `json:"all_schedules"`
	Members      []memberModel.MemberModel         `json:"members,omitempty"`
	Attendances  []attendanceModel.AttendanceModel `json:"attendances,omitempty"`
	Groups       any                               `json:"groups,omitempty"`
	Positions    []string                          `json:"positions,omitempty"`
	Tab          string                            `json:"tab"`
}
