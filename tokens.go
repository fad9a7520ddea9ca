package main

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the payload shared by access and refresh tokens. The two
// kinds differ only in signing secret and lifetime.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"id"`
	Role   string `json:"role"`
}

func issueAccessToken(userID uint, role string) (string, error) {
	return signToken(userID, role, cfg.AccessSecret, accessTokenTTL)
}

func issueRefreshToken(userID uint, role string) (string, error) {
	return signToken(userID, role, cfg.RefreshSecret, refreshTokenTTL)
}

func signToken(userID uint, role string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Role:   role,
	})
	return token.SignedString(secret)
}

func parseAccessToken(tokenString string) (*sessionClaims, error) {
	return parseToken(tokenString, cfg.AccessSecret)
}

func parseRefreshToken(tokenString string) (*sessionClaims, error) {
	return parseToken(tokenString, cfg.RefreshSecret)
}

// parseToken verifies signature and expiry. Callers must distinguish expiry
// (errors.Is(err, jwt.ErrTokenExpired), the normal refresh trigger for access
// tokens) from any other failure, which requires a hard re-auth.
func parseToken(tokenString string, secret []byte) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// tokenExpired reports whether a parse failure was expiry alone.
func tokenExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
