package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	Name         string           `gorm:"not null;size:200" json:"name"`
	Username     string           `gorm:"uniqueIndex;not null;size:100" json:"username"`
	Email        string           `gorm:"size:200" json:"email"`
	PasswordHash string           `gorm:"not null" json:"-"`
	IsAdmin      bool             `gorm:"default:false" json:"is_admin"`
	Records      []OvertimeRecord `gorm:"foreignKey:UserID" json:"records,omitempty"`
}

func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// Initial is the one-letter avatar label shown next to the dashboard greeting.
func (u *User) Initial() string {
	name := u.DisplayName()
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

func (u *User) CanManageRecordsFor(userID uint) bool {
	if u.IsAdmin {
		return true
	}
	return u.ID == userID
}
