// kahootboard/internal/handlers/student_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/jozzegt/kahootboard/config"
	"github.com/jozzegt/kahootboard/models"
)

// CreateStudentInput defines the structure for creating a student.
type CreateStudentInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// ListStudentsHandler returns every student account ordered by display name.
func ListStudentsHandler(c *gin.Context) {
	var students []models.Student
	if err := config.DB.Order("display_name").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list students"})
		return
	}
	c.JSON(http.StatusOK, students)
}

// CreateStudentHandler creates a new student account with the default
// avatar. Usernames that differ only in case count as duplicates.
func CreateStudentHandler(c *gin.Context) {
	var input CreateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Password == "" || input.DisplayName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, password and displayName are required"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.Student{}).Where("LOWER(username) = LOWER(?)", input.Username).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "a student with this username already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	student := models.Student{
		Username:    input.Username,
		Password:    string(hash),
		DisplayName: input.DisplayName,
		Avatar:      config.DefaultStudentAvatar,
	}
	if err := config.DB.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create student"})
		return
	}
	c.JSON(http.StatusCreated, student)
}

// DeleteStudentHandler removes a student account. Deleting an unknown
// id is not an error; the operation is idempotent.
func DeleteStudentHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student ID"})
		return
	}
	if err := config.DB.Delete(&models.Student{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete student"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
