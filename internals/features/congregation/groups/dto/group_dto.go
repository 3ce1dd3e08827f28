package dto

type CreateGroupRequest struct {
	Name              string  `json:"group_name" validate:"required,min=2,max=100"`
	Type              string  `json:"group_type" validate:"required,oneof=adult young_adult children"`
	GenderRestriction *string `json:"gender_restriction" validate:"omitempty,oneof=male female"`
	Description       *string `json:"description" validate:"omitempty,max=500"`
}

type UpdateGroupRequest struct {
	Name              *string `json:"group_name" validate:"omitempty,min=2,max=100"`
	Type              *string `json:"group_type" validate:"omitempty,oneof=adult young_adult children"`
	GenderRestriction *string `json:"gender_restriction" validate:"omitempty,oneof=male female"`
	Description       *string `json:"description" validate:"omitempty,max=500"`
}

// AddGroupRequest: buat grup dari halaman kehadiran sekaligus
// menetapkan leader dan memindahkan anggota terpilih.
type AddGroupRequest struct {
	GroupName       string `json:"group_name" validate:"required,min=2,max=100"`
	LeaderID        uint   `json:"leader_id" validate:"required"`
	SelectedMembers []uint `json:"selected_members"`
}
