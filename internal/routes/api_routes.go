// kahootboard/internal/routes/api_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jozzegt/kahootboard/internal/handlers"
	"github.com/jozzegt/kahootboard/internal/middleware"
)

// RegisterAPIRoutes registers every route behind authentication.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	// Self-service routes. Scores are student-only; the avatar change
	// is open to both roles, each writing its own record.
	me := api.Group("/me")
	{
		me.GET("/scores", middleware.StudentOnly(), handlers.GetMyScoresHandler)
		me.PATCH("/avatar", handlers.UpdateAvatarHandler)
	}

	// Teacher-only administration.
	teacher := api.Group("/teacher")
	teacher.Use(middleware.TeacherOnly())
	{
		teacher.GET("/students", handlers.ListStudentsHandler)
		teacher.POST("/students", handlers.CreateStudentHandler)
		teacher.DELETE("/students/:id", handlers.DeleteStudentHandler)
		teacher.GET("/sheet", handlers.GetSheetHandler)
		teacher.POST("/sheet/upload", handlers.UploadSheetHandler)
		teacher.PATCH("/config", handlers.UpdateTeacherConfigHandler)
	}
}
