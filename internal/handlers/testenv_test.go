// kahootboard/internal/handlers/testenv_test.go
// Shared setup for handler tests: a fresh in-memory database behind
// the real router, exercised over httptest.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jozzegt/kahootboard/config"
	"github.com/jozzegt/kahootboard/internal/routes"
)

// setupRouter points config.DB at a per-test in-memory SQLite
// database, seeds the default teacher account and returns the real
// application router.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.MigrateAndSeed(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db
	config.RDB = nil

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password, role string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": username,
		"password": password,
		"role":     role,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login as %s/%s failed: %d %s", username, role, w.Code, w.Body)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("no token in login response: %s", w.Body)
	}
	return resp.Token
}

func createStudent(t *testing.T, r *gin.Engine, teacherToken, username, password, displayName string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/teacher/students", teacherToken, gin.H{
		"username":    username,
		"password":    password,
		"displayName": displayName,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create student %s failed: %d %s", username, w.Code, w.Body)
	}
}
