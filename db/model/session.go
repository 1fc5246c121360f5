package model

import (
	"time"

	"gorm.io/gorm"
)

// Session is one signed-in device of a member; the push worker reads the
// expo token off it.
type Session struct {
	MemberID      uint           `json:"member_id" gorm:"primaryKey"`
	IP            string         `json:"ip" gorm:"primaryKey"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	ExpoPushToken string         `json:"-"`
}
