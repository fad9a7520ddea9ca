package main

import (
	"errors"
	"time"

	"imfapi/models"

	"gorm.io/gorm"
)

// storeRefreshToken persists a newly issued refresh token with the device and
// IP it was issued to. Exactly one record exists per issued token.
func storeRefreshToken(token string, userID uint, device, ipAddress string, expiresAt time.Time) error {
	rt := models.RefreshToken{
		UserID:    userID,
		Token:     token,
		Device:    device,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
	}
	return db.Create(&rt).Error
}

// blacklistRefreshToken marks a token permanently unusable and stamps the
// revocation time. Append-only: there is no un-blacklisting.
func blacklistRefreshToken(token string) error {
	now := time.Now()
	res := db.Model(&models.RefreshToken{}).
		Where("token = ?", token).
		Updates(map[string]interface{}{"blacklisted": true, "revoked_at": &now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// isRefreshTokenBlacklisted answers whether a token may still be rotated.
// A token with no record is treated as unusable: every legitimately issued
// token has one.
func isRefreshTokenBlacklisted(token string) (bool, error) {
	var rt models.RefreshToken
	if err := db.Where("token = ?", token).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}
	return rt.Blacklisted, nil
}
