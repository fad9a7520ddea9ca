package models

import (
	"time"
)

// User model
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Username       string         `gorm:"size:255;not null;unique" json:"username"`
	HashedPassword []byte         `gorm:"not null" json:"-"`
	Role           string         `gorm:"size:16;not null;default:USER" json:"role"`
	RefreshTokens  []RefreshToken `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
