package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog хранит историю действий пользователя
type ActivityLog struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"index"`
	Action    string         `json:"action"` // "register", "login", "submission"
	Details   datatypes.JSON `json:"details"`
	CreatedAt time.Time      `json:"created_at"`

	User User `gorm:"foreignKey:UserID"`
}
