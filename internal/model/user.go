package model

import (
	"time"
)

type User struct {
	ID           ID        `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}
