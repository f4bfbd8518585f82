package models

import (
	"time"

	"gorm.io/gorm"
)

// OvertimeRecord is one logged overtime interval. StartTime and EndTime are
// local clock times in HH:MM; an end time earlier than the start time means
// the shift ran past midnight into the next day. Hours and value are derived
// on demand by the timesheet package, never stored.
type OvertimeRecord struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	User         User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Date         time.Time      `gorm:"not null;type:date" json:"date"`
	StartTime    string         `gorm:"not null;size:5" json:"start_time"`
	EndTime      string         `gorm:"not null;size:5" json:"end_time"`
	HasLunch     bool           `gorm:"default:false" json:"has_lunch"`
	Observations string         `gorm:"size:500" json:"observations"`
}
