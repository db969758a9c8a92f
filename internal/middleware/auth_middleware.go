// kahootboard/internal/middleware/auth_middleware.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jozzegt/kahootboard/config"
)

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Claims is the identity embedded in a session token. DisplayName and
// Avatar are a snapshot taken at login; they are not refreshed if the
// account changes before the token expires.
type Claims struct {
	UserID      uint   `json:"id"`
	Role        string `json:"role"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context for the handlers behind it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token not provided"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header format"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return config.JwtKey, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("identity", claims)
		c.Next()
	}
}

// Identity returns the claims stored by AuthMiddleware, or nil when
// the request never passed through it.
func Identity(c *gin.Context) *Claims {
	val, _ := c.Get("identity")
	claims, _ := val.(*Claims)
	return claims
}

// TeacherOnly rejects callers whose token does not carry the teacher role.
func TeacherOnly() gin.HandlerFunc {
	return requireRole(RoleTeacher, "teacher access required")
}

// StudentOnly rejects callers whose token does not carry the student role.
func StudentOnly() gin.HandlerFunc {
	return requireRole(RoleStudent, "student access required")
}

func requireRole(role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Identity(c)
		if claims == nil || claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
