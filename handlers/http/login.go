package httpHandler

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"robot-server/entities"
)

type LoginHandler struct {
	db     *gorm.DB
	secret string
}

func NewLoginHandler(db *gorm.DB, secret string) *LoginHandler {
	return &LoginHandler{db: db, secret: secret}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
	Success  bool   `json:"success"`
}

// hashPassword creates a SHA-256 hash of the password (matching how the
// accounts were provisioned).
func hashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

// Login authenticates a user and returns a bearer token.
func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var user entities.User
	result := h.db.Where("username = ?", req.Username).First(&user)
	if result.Error != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if user.PasswordHash != hashPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := IssueToken(h.secret, AuthUser{ID: user.ID, Username: user.Username, Rol: user.Rol}, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
		Success:  true,
	})
}
