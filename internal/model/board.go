package model

import (
	"time"
)

type Board struct {
	ID          ID      `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"not null"`
	Description *string
	IsPublic    bool      `gorm:"not null;default:false"`
	OwnerID     ID        `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Owner User `gorm:"foreignKey:OwnerID"`
}
