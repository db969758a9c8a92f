// kahootboard/internal/routes/auth_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jozzegt/kahootboard/internal/handlers"
)

// RegisterAuthRoutes registers the public authentication routes.
// These do not require a token.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/login", handlers.LoginHandler)
}
