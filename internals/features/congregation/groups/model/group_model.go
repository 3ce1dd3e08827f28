package model

// Jenis kelompok jemaat.
const (
	GroupTypeAdult      = "adult"
	GroupTypeYoungAdult = "young_adult"
	GroupTypeChildren   = "children"
)

// Gender dipakai lintas fitur (restriksi grup & data anggota).
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

func IsValidGroupType(t string) bool {
	return t == GroupTypeAdult || t == GroupTypeYoungAdult || t == GroupTypeChildren
}

func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

type GroupModel struct {
	GroupID uint `gorm:"primaryKey;column:group_id" json:"group_id"`

	Name string `gorm:"not null;column:group_name" json:"group_name"`
	Type string `gorm:"not null;column:group_type" json:"group_type"`

	// Nil = grup campuran; selain itu "male"/"female".
	GenderRestriction *string `gorm:"column:group_gender_restriction" json:"group_gender_restriction,omitempty"`
	Description       *string `gorm:"column:group_description" json:"group_description,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }
