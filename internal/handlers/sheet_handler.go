// kahootboard/internal/handlers/sheet_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jozzegt/kahootboard/config"
	"github.com/jozzegt/kahootboard/internal/importer"
	"github.com/jozzegt/kahootboard/internal/middleware"
	"github.com/jozzegt/kahootboard/models"
)

const (
	sheetCacheKey = "sheet:rows"
	sheetCacheTTL = 10 * time.Minute
)

// GetSheetHandler returns the full score table ordered by name,
// serving from the cache when one is configured.
func GetSheetHandler(c *gin.Context) {
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, sheetCacheKey).Result()
		if err == nil {
			var rows []models.ScoreRow
			if json.Unmarshal([]byte(cached), &rows) == nil {
				c.JSON(http.StatusOK, rows)
				return
			}
			slog.Warn("failed to unmarshal cached sheet, falling back to DB")
		} else if err != redis.Nil {
			slog.Error("Redis GET command failed", "error", err)
		}
	}

	var rows []models.ScoreRow
	if err := config.DB.Order("name").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sheet"})
		return
	}

	if config.RDB != nil {
		if data, err := json.Marshal(rows); err == nil {
			if err := config.RDB.Set(config.Ctx, sheetCacheKey, data, sheetCacheTTL).Err(); err != nil {
				slog.Warn("failed to cache sheet", "error", err)
			}
		}
	}
	c.JSON(http.StatusOK, rows)
}

// GetMyScoresHandler returns the caller's own score row, matched by
// the display name embedded in the token (trimmed, case-insensitive).
// No match is a valid empty result, not an error: the student simply
// has no recorded scores yet.
func GetMyScoresHandler(c *gin.Context) {
	claims := middleware.Identity(c)

	var row models.ScoreRow
	err := config.DB.Where("LOWER(TRIM(name)) = LOWER(TRIM(?))", claims.DisplayName).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scores"})
		return
	}
	c.JSON(http.StatusOK, row)
}

// UploadSheetHandler ingests an uploaded workbook and atomically
// replaces the score table with its normalized rows.
func UploadSheetHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file received"})
		return
	}
	if file.Size > config.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the upload size limit"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer src.Close()

	count, err := importer.Import(config.DB, src)
	if err != nil {
		if errors.Is(err, importer.ErrNoData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no data found in file"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error processing file: " + err.Error()})
		return
	}

	invalidateSheetCache()
	slog.Info("sheet imported", "rows", count)
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": count})
}

func invalidateSheetCache() {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, sheetCacheKey).Err(); err != nil {
		slog.Warn("failed to invalidate sheet cache", "error", err)
	}
}
