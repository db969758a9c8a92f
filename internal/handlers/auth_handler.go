// kahootboard/internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jozzegt/kahootboard/config"
	"github.com/jozzegt/kahootboard/internal/middleware"
	"github.com/jozzegt/kahootboard/models"
)

// LoginInput defines the credentials expected by LoginHandler.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginHandler authenticates either role and issues a session token.
// Credential failures are reported identically whether the account is
// missing or the password is wrong, so usernames cannot be enumerated.
func LoginHandler(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Password == "" || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, password and role are required"})
		return
	}

	switch input.Role {
	case middleware.RoleTeacher:
		// The teacher account is a singleton; the fixed row is the
		// lookup key, not the supplied username.
		var teacher models.Teacher
		if err := config.DB.First(&teacher, models.TeacherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			}
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		issueToken(c, teacher.ID, middleware.RoleTeacher, teacher.Username, teacher.DisplayName, teacher.Avatar)

	case middleware.RoleStudent:
		var student models.Student
		if err := config.DB.Where("LOWER(username) = LOWER(?)", input.Username).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			}
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		issueToken(c, student.ID, middleware.RoleStudent, student.Username, student.DisplayName, student.Avatar)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
	}
}

// issueToken signs a token whose claims snapshot the account's display
// attributes at login time, and writes the login response.
func issueToken(c *gin.Context, id uint, role, username, displayName, avatar string) {
	now := time.Now()
	claims := middleware.Claims{
		UserID:      id,
		Role:        role,
		Username:    username,
		DisplayName: displayName,
		Avatar:      avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.TokenTTL)),
			Issuer:    "kahootboard",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JwtKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"role":        role,
		"displayName": displayName,
		"avatar":      avatar,
	})
}
