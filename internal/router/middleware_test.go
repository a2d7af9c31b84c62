package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/models"
	"github.com/linque-cms/internal/repository"
	"github.com/linque-cms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if strings.TrimSpace(w2.Header().Get(requestIDHeader)) == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func newAuthFixture(t *testing.T) (*service.AuthService, repository.AdminRepository, *models.Admin) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "router-test-secret"
	cfg.JWT.ExpireHours = 1

	adminRepo := repository.NewAdminRepository(db)
	authService := service.NewAuthService(cfg, adminRepo)

	hash, err := authService.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{Username: "editor", PasswordHash: hash}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return authService, adminRepo, admin
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authService, adminRepo, admin := newAuthFixture(t)
	token, _, err := authService.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	r := gin.New()
	r.Use(JWTAuthMiddleware("router-test-secret", adminRepo))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetUint("admin_id")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token status want 200 got %d body %s", w.Code, w.Body.String())
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w2, req2)
	if !strings.Contains(w2.Body.String(), "authorization header missing") {
		t.Fatalf("missing header should be rejected, got %s", w2.Body.String())
	}

	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req3.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w3, req3)
	if !strings.Contains(w3.Body.String(), "invalid or expired token") {
		t.Fatalf("garbage token should be rejected, got %s", w3.Body.String())
	}
}

func TestJWTAuthMiddlewareDeletedAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authService, _, admin := newAuthFixture(t)
	token, _, err := authService.GenerateJWT(admin)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	// Fresh empty repo so the admin named by the token no longer exists.
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	emptyRepo := repository.NewAdminRepository(db)

	r := gin.New()
	r.Use(JWTAuthMiddleware("router-test-secret", emptyRepo))
	r.GET("/admin/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), "invalid or expired token") {
		t.Fatalf("token for deleted admin should be rejected, got %s", w.Body.String())
	}
}
