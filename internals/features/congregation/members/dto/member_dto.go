package dto

// AddMemberRequest: body JSON dari form tambah anggota di halaman kehadiran.
// Nama dikirim utuh lalu dipecah depan/belakang di controller.
type AddMemberRequest struct {
	FullName   string  `json:"full_name" validate:"required,min=3,max=100"`
	LifeNumber *string `json:"life_number" validate:"omitempty,max=30"`
	Gender     string  `json:"gender" validate:"required,oneof=male female"`
	GroupID    uint    `json:"group_id" validate:"required"`
	Position   *string `json:"position" validate:"omitempty,max=100"`
}

type UpdateMemberRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Gender       *string `json:"gender" validate:"omitempty,oneof=male female"`
	GroupID      *uint   `json:"group_id"`
	MemberNumber *string `json:"member_number" validate:"omitempty,max=30"`
	Position     *string `json:"position" validate:"omitempty,max=100"`
	IsActive     *bool   `json:"is_active"`
}

// BulkImportRequest: blob teks mentah tab-separated + grup default opsional.
type BulkImportRequest struct {
	MemberData     string `json:"member_data" validate:"required"`
	DefaultGroupID *uint  `json:"default_group_id"`
}
