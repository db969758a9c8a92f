// kahootboard/internal/routes/router.go
package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/jozzegt/kahootboard/internal/middleware"
)

// SetupRoutes wires every route of the application onto r.
func SetupRoutes(r *gin.Engine) {
	// Public routes first: no token required.
	RegisterAuthRoutes(r)

	// Everything in this group requires a valid session token.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}

	// Paths not matched by the API serve the static front end, with
	// the SPA entry point as the fallback.
	r.NoRoute(spaFallback("./public"))
}

func spaFallback(root string) gin.HandlerFunc {
	index := filepath.Join(root, "index.html")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		path := filepath.Join(root, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(index)
	}
}
