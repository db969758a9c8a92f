// kahootboard/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jozzegt/kahootboard/config"
	"github.com/jozzegt/kahootboard/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment defaults")
	}

	config.Load()
	config.ConnectDB()
	config.ConnectRedis()

	r := gin.Default()
	r.MaxMultipartMemory = config.MaxUploadBytes
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	slog.Info("kahootboard listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
