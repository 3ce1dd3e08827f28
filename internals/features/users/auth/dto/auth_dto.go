package dto

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest hanya bisa dipakai administrator.
type RegisterRequest struct {
	UserName        string `json:"user_name" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	FullName        string `json:"full_name" validate:"required,min=3,max=100"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	MemberID        *uint  `json:"member_id"`
	// admin | team_leader | user
	AccessType string `json:"access_type" validate:"required,oneof=admin team_leader user"`
}
