package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carnage89/AlexeyR/internal/services"
)

type AuthHandler struct {
	adminAuthService services.AdminAuthService
}

func NewAuthHandler(adminAuthService services.AdminAuthService) *AuthHandler {
	return &AuthHandler{adminAuthService: adminAuthService}
}

func (ah *AuthHandler) Authenticate(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
		return
	}
	token, err := ah.adminAuthService.Authenticate(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
