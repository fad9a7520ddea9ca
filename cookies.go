package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// setAuthCookies writes both tokens as httpOnly SameSite=Strict cookies.
// Secure is set outside development so the pair never travels over plain
// HTTP in production.
func setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	secure := cfg.Environment == "production"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessTokenCookie, accessToken, int(accessTokenTTL.Seconds()), "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, refreshToken, int(refreshTokenTTL.Seconds()), "/", "", secure, true)
}

func clearAuthCookies(c *gin.Context) {
	secure := cfg.Environment == "production"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", secure, true)
}
