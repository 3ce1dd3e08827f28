package dto

type CreateScheduleRequest struct {
	Title       string  `json:"schedule_title" validate:"required,min=2,max=150"`
	Date        string  `json:"schedule_date" validate:"required,datetime=2006-01-02"`
	Description *string `json:"schedule_description" validate:"omitempty,max=500"`
	GroupID     *uint   `json:"schedule_group_id"`
}

type UpdateScheduleRequest struct {
	Title       *string `json:"schedule_title" validate:"omitempty,min=2,max=150"`
	Date        *string `json:"schedule_date" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"schedule_description" validate:"omitempty,max=500"`
	GroupID     *uint   `json:"schedule_group_id"`
	ClearGroup  bool    `json:"clear_group"`
}
