package main

import (
	"strings"
	"time"

	"imfapi/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const authContextKey = "authContext"

// authContext is the resolved per-request identity, produced by the session
// middleware and read by handlers instead of scattering fields across the
// request.
type authContext struct {
	UserID uint
	Role   string
}

func currentAuth(c *gin.Context) (authContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return authContext{}, false
	}
	auth, ok := v.(authContext)
	return auth, ok
}

// readAccessToken prefers the accessToken cookie; a Bearer header is accepted
// as a fallback for non-browser clients.
func readAccessToken(c *gin.Context) string {
	if v, err := c.Cookie(accessTokenCookie); err == nil && v != "" {
		return v
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return h[len("Bearer "):]
	}
	return ""
}

// sessionMiddleware is the two-stage per-request gate.
//
// Stage 1 probes the access token: any verification failure, including
// expiry, marks the request for refresh rather than failing it. Stage 2 runs
// only when the probe failed and rotates the refresh token: each refresh
// token is valid for exactly one rotation, so a stolen token replayed after
// its legitimate use hits the blacklist and forces a re-login.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := readAccessToken(c); raw != "" {
			if claims, err := parseAccessToken(raw); err == nil {
				c.Set(authContextKey, authContext{UserID: claims.UserID, Role: claims.Role})
				c.Next()
				return
			}
		}
		raw, err := c.Cookie(refreshTokenCookie)
		if err != nil || raw == "" {
			abortWithError(c, authenticationError("User must be logged in to access this resource"))
			return
		}
		auth, rerr := rotateSession(c, raw)
		if rerr != nil {
			abortWithError(c, rerr)
			return
		}
		c.Set(authContextKey, auth)
		c.Next()
	}
}

// rotateSession verifies a refresh token, blacklists it, and issues a fresh
// pair bound to the requesting device. An expired refresh token is terminal,
// unlike an expired access token.
func rotateSession(c *gin.Context, refreshToken string) (authContext, error) {
	claims, err := parseRefreshToken(refreshToken)
	if err != nil {
		return authContext{}, authenticationError("Invalid or expired session. Please log in again")
	}
	blacklisted, err := isRefreshTokenBlacklisted(refreshToken)
	if err != nil {
		return authContext{}, internalError("failed to check session")
	}
	if blacklisted {
		return authContext{}, authenticationError("Something Went Wrong. Please log in again")
	}
	// Blacklist-then-issue, two store calls. A crash in between leaves a
	// blacklisted-but-unreplaced token, which errs toward forcing re-login
	// rather than allowing replay.
	if err := blacklistRefreshToken(refreshToken); err != nil {
		return authContext{}, internalError("failed to rotate session")
	}
	newAccess, err := issueAccessToken(claims.UserID, claims.Role)
	if err != nil {
		return authContext{}, internalError("failed to generate token")
	}
	newRefresh, err := issueRefreshToken(claims.UserID, claims.Role)
	if err != nil {
		return authContext{}, internalError("failed to generate token")
	}
	expiresAt := time.Now().Add(refreshTokenTTL)
	if err := storeRefreshToken(newRefresh, claims.UserID, c.Request.UserAgent(), c.ClientIP(), expiresAt); err != nil {
		return authContext{}, internalError("failed to store refresh token")
	}
	setAuthCookies(c, newAccess, newRefresh)
	return authContext{UserID: claims.UserID, Role: claims.Role}, nil
}

// requireAdmin gates admin-only routes. Must run after sessionMiddleware.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := currentAuth(c)
		if !ok {
			abortWithError(c, authenticationError("User must be logged in to access this resource"))
			return
		}
		if auth.Role != models.RoleAdmin {
			abortWithError(c, authorizationError("Access Denied: Admins Only"))
			return
		}
		c.Next()
	}
}

// handleReLogin guards POST /auth/login. A currently valid session for the
// same username is rejected with 400; a valid session for a different user is
// cleared so the login proceeds; an expired token proceeds normally; a
// malformed token (not merely expired) is a 401.
func handleReLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		// Buffered bind so loginHandler can re-bind the same body.
		_ = c.ShouldBindBodyWith(&req, binding.JSON)

		for _, probe := range []struct {
			cookie string
			parse  func(string) (*sessionClaims, error)
		}{
			{accessTokenCookie, parseAccessToken},
			{refreshTokenCookie, parseRefreshToken},
		} {
			raw, err := c.Cookie(probe.cookie)
			if err != nil || raw == "" {
				continue
			}
			claims, err := probe.parse(raw)
			if err != nil {
				if !tokenExpired(err) {
					abortWithError(c, authenticationError("Invalid session. Please login again"))
					return
				}
				continue
			}
			if sameUser(claims.UserID, req.Username) {
				abortWithError(c, &apiError{Type: "Authentication", Message: "Already logged in", Status: 400})
				return
			}
			// Stale session for another account: clear it and let the login proceed.
			clearAuthCookies(c)
			break
		}
		c.Next()
	}
}

func sameUser(userID uint, username string) bool {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return false
	}
	return user.Username == strings.TrimSpace(username)
}
