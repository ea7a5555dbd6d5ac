package model

import (
	"time"
)

type Card struct {
	ID          ID      `gorm:"primaryKey;autoIncrement"`
	ListID      ID      `gorm:"not null;index"`
	Title       string  `gorm:"not null"`
	Description *string
	DueDate     *time.Time
	OrderIndex  int       `gorm:"not null"`
	CreatorID   ID        `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	List    List `gorm:"foreignKey:ListID"`
	Creator User `gorm:"foreignKey:CreatorID"`
}
