package model

import (
	"time"
)

type List struct {
	ID         ID        `gorm:"primaryKey;autoIncrement"`
	BoardID    ID        `gorm:"not null;index"`
	Title      string    `gorm:"not null"`
	OrderIndex int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Board Board `gorm:"foreignKey:BoardID"`
}
