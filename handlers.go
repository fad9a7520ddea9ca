package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"imfapi/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

func setupRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	auth.POST("/register", registerHandler)
	auth.POST("/login", handleReLogin(), loginHandler)
	auth.POST("/logout", logoutHandler)
	auth.POST("/refresh", refreshHandler)

	gadgets := r.Group("/gadgets")
	gadgets.Use(sessionMiddleware())
	gadgets.GET("", listGadgetsHandler)
	admin := gadgets.Group("")
	admin.Use(requireAdmin())
	admin.POST("", createGadgetHandler)
	admin.PATCH("/:id", updateGadgetHandler)
	admin.DELETE("/:id", decommissionGadgetHandler)
	admin.POST("/:id/self-destruct", selfDestructHandler)
	admin.POST("/:id/self-destruct/confirm", confirmSelfDestructHandler)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func registerHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, validationError(err.Error()))
		return
	}
	if err := registerUser(req.Username, req.Password, req.Role); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Registration Success!, Hey %s, you can login now", req.Username),
	})
}

func loginHandler(c *gin.Context) {
	var req loginRequest
	// Body may already have been read by the re-login guard; bind from the buffer.
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		abortWithError(c, validationError(err.Error()))
		return
	}
	user, err := authenticate(req.Username, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	accessToken, refreshToken, err := issueSession(user, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		abortWithError(c, err)
		return
	}
	setAuthCookies(c, accessToken, refreshToken)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Hey %s, Login Successful", user.Username)})
}

func logoutHandler(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		abortWithError(c, authenticationError("Must be logged in for logging out"))
		return
	}
	if err := blacklistRefreshToken(refreshToken); err != nil {
		// A token with no record was never issued by us.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, authenticationError("Invalid session. Please login again"))
			return
		}
		abortWithError(c, internalError("Error occurred while logging out"))
		return
	}
	clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged Out Successfully!"})
}

// refreshHandler rotates the session explicitly. The refresh token comes from
// the cookie, or the body for non-browser clients.
func refreshHandler(c *gin.Context) {
	refreshToken, _ := c.Cookie(refreshTokenCookie)
	if refreshToken == "" {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = c.ShouldBindJSON(&req)
		refreshToken = req.RefreshToken
	}
	if refreshToken == "" {
		abortWithError(c, authenticationError("User must be logged in to access this resource"))
		return
	}
	if _, err := rotateSession(c, refreshToken); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session refreshed"})
}

func createGadgetHandler(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,min=3"`
		Description string `json:"description" binding:"omitempty,min=4"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, validationError(err.Error()))
		return
	}
	gadget, err := createGadget(req.Name, req.Description, req.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gadget)
}

func listGadgetsHandler(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		abortWithError(c, authenticationError("User must be logged in to access this resource"))
		return
	}
	// Non-numeric page/limit clamp to 1 like non-positive values do.
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 1
	}
	gadgets, total, err := listGadgets(page, limit, c.Query("status"), auth.Role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if auth.Role == models.RoleAdmin {
		c.JSON(http.StatusOK, gin.H{"gadgets": gadgets, "total": total})
		return
	}
	c.JSON(http.StatusOK, gadgets)
}

func updateGadgetHandler(c *gin.Context) {
	var req struct {
		Name        *string `json:"name" binding:"omitempty,min=3"`
		Description *string `json:"description" binding:"omitempty,min=4"`
		Status      *string `json:"status" binding:"omitempty,oneof=AVAILABLE DEPLOYED"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, validationError(err.Error()))
		return
	}
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		abortWithError(c, validationError("At least one field (name, description, or status) must be provided"))
		return
	}
	gadget, err := updateGadget(c.Param("id"), updates)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gadget)
}

func decommissionGadgetHandler(c *gin.Context) {
	gadget, err := decommissionGadget(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gadget)
}

func selfDestructHandler(c *gin.Context) {
	code, err := initiateSelfDestruct(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Confirmation code generated. Use this code to confirm self-destruct.",
		"expiresIn": "3 minutes",
		"code":      code,
	})
}

func confirmSelfDestructHandler(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required,len=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, validationError(err.Error()))
		return
	}
	gadget, err := destroyGadget(c.Param("id"), req.Code)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gadget)
}
