// kahootboard/internal/handlers/profile_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/jozzegt/kahootboard/config"
	"github.com/jozzegt/kahootboard/internal/middleware"
	"github.com/jozzegt/kahootboard/models"
)

// UpdateAvatarHandler lets the caller change their own avatar. The row
// to update comes from the token identity, never from request input,
// so one account can never write another's avatar.
func UpdateAvatarHandler(c *gin.Context) {
	var input struct {
		Avatar string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Avatar == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar is required"})
		return
	}

	claims := middleware.Identity(c)
	var err error
	if claims.Role == middleware.RoleStudent {
		err = config.DB.Model(&models.Student{}).Where("id = ?", claims.UserID).Update("avatar", input.Avatar).Error
	} else {
		err = config.DB.Model(&models.Teacher{}).Where("id = ?", models.TeacherID).Update("avatar", input.Avatar).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update avatar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UpdateTeacherConfigInput defines the structure for updating the
// teacher's credentials. Password is optional.
type UpdateTeacherConfigInput struct {
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// UpdateTeacherConfigHandler updates the teacher account. The stored
// hash is replaced only when a new password is supplied; an omitted
// password leaves the existing hash untouched.
func UpdateTeacherConfigHandler(c *gin.Context) {
	var input UpdateTeacherConfigInput
	if err := c.ShouldBindJSON(&input); err != nil || input.DisplayName == "" || input.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "displayName and username are required"})
		return
	}

	var teacher models.Teacher
	if err := config.DB.First(&teacher, models.TeacherID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "teacher account not found"})
		return
	}

	teacher.DisplayName = input.DisplayName
	teacher.Username = input.Username
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}
		teacher.Password = string(hash)
	}

	if err := config.DB.Save(&teacher).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update teacher account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
