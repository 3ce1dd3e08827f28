package model

import (
	"time"

	"gorm.io/datatypes"
)

// ImportLogModel menyimpan jejak setiap bulk import: ringkasan jumlah
// plus diagnosa baris yang di-skip sebagai JSON.
type ImportLogModel struct {
	ImportLogID uint `gorm:"primaryKey;column:import_log_id" json:"import_log_id"`

	DefaultGroupID *uint `gorm:"column:import_log_default_group_id" json:"import_log_default_group_id,omitempty"`

	AddedCount   int `gorm:"not null;column:import_log_added_count" json:"import_log_added_count"`
	SkippedCount int `gorm:"not null;column:import_log_skipped_count" json:"import_log_skipped_count"`

	Details datatypes.JSON `gorm:"column:import_log_details" json:"import_log_details,omitempty"`

	CreatedAt time.Time `gorm:"column:import_log_created_at;autoCreateTime" json:"import_log_created_at"`
}

func (ImportLogModel) TableName() string { return "import_logs" }
