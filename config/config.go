// kahootboard/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

var (
	// JwtKey signs session tokens. Override with JWT_SECRET in production.
	JwtKey = []byte("kahootboard-secret-2024")

	// TokenTTL is the validity window of an issued token. There is no
	// revocation list; a token stays valid until it expires.
	TokenTTL = 7 * 24 * time.Hour

	// MaxUploadBytes caps spreadsheet uploads before parsing begins.
	MaxUploadBytes int64 = 10 << 20

	// DefaultStudentAvatar is assigned to newly created students.
	DefaultStudentAvatar = "🐱"
)

// Load overrides the defaults above from the environment.
func Load() {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		JwtKey = []byte(secret)
	}
	if hours := os.Getenv("JWT_TTL_HOURS"); hours != "" {
		if h, err := strconv.Atoi(hours); err == nil && h > 0 {
			TokenTTL = time.Duration(h) * time.Hour
		}
	}
}
