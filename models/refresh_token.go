package models

import "time"

// RefreshToken stores an issued refresh token together with the device and IP
// it was issued to. Blacklisting is append-only: once set the token is
// permanently unusable, regardless of its expiry.
type RefreshToken struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	UserID      uint       `gorm:"index;not null" json:"userId"`
	Token       string     `gorm:"size:512;not null;uniqueIndex" json:"-"`
	Device      string     `gorm:"size:255" json:"device"`
	IPAddress   string     `gorm:"size:64" json:"ipAddress"`
	ExpiresAt   time.Time  `gorm:"index;not null" json:"expiresAt"`
	Blacklisted bool       `gorm:"default:false;index" json:"blacklisted"`
	RevokedAt   *time.Time `json:"revokedAt,omitempty"`
}
