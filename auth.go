package main

import (
	"errors"
	"strings"
	"time"

	"imfapi/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// registerUser validates and persists a new account. Registration never logs
// the user in.
func registerUser(username, password, role string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 20 {
		return validationError("username must be 3-20 characters")
	}
	if len(password) < 6 {
		return validationError("password too short (min 6)")
	}
	normalized, ok := models.NormalizeRole(role)
	if !ok {
		return validationError("role must be one of USER, ADMIN")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return internalError("failed to hash password")
	}
	user := models.User{Username: username, HashedPassword: hashedPassword, Role: normalized}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return conflictError("Username is already registered")
		}
		return internalError("failed to register user")
	}
	return nil
}

// authenticate checks credentials. Unknown username and wrong password return
// the same generic error so callers cannot enumerate accounts.
func authenticate(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, authenticationError("Invalid Credentials")
		}
		return models.User{}, internalError("failed to look up user")
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, authenticationError("Invalid Credentials")
	}
	return user, nil
}

// issueSession generates a token pair for user and persists the refresh-token
// record for the issuing device.
func issueSession(user models.User, device, ipAddress string) (accessToken, refreshToken string, err error) {
	accessToken, err = issueAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", internalError("failed to generate token")
	}
	refreshToken, err = issueRefreshToken(user.ID, user.Role)
	if err != nil {
		return "", "", internalError("failed to generate token")
	}
	expiresAt := time.Now().Add(refreshTokenTTL)
	if err := storeRefreshToken(refreshToken, user.ID, device, ipAddress, expiresAt); err != nil {
		return "", "", internalError("failed to store refresh token")
	}
	return accessToken, refreshToken, nil
}
