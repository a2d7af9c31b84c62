package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/provider"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.JWT.SecretKey = "router-test-secret"
	cfg.JWT.ExpireHours = 1
	cfg.Content.CacheTTLSeconds = 60

	// nil db: catalog-only mode, no redis, no queue.
	container := provider.NewContainer(cfg, nil)
	return SetupRouter(cfg, container)
}

func TestRouterPublicPostsCatalogFallback(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/posts", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "future-of-hr-digital-transformation") {
		t.Fatalf("catalog posts should be served without a store, got %s", w.Body.String())
	}
}

func TestRouterUnknownAPIRoute(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/nothing-here", nil)
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "route not found") {
		t.Fatalf("unknown api path should return a json 404, got %s", w.Body.String())
	}
}

func TestRouterUnknownPageRedirectsHome(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nothing-here", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status want 302 got %d", w.Code)
	}
	if w.Header().Get("Location") != "/" {
		t.Fatalf("location want / got %s", w.Header().Get("Location"))
	}
}

func TestRouterUnknownBlogPostRedirectsToListing(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/blog/not-a-real-post", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status want 302 got %d", w.Code)
	}
	if w.Header().Get("Location") != "/blog" {
		t.Fatalf("location want /blog got %s", w.Header().Get("Location"))
	}
}

func TestRouterAdminRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/posts", nil)
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "admin authentication unavailable") &&
		!strings.Contains(w.Body.String(), "authorization header missing") {
		t.Fatalf("admin route should be guarded, got %s", w.Body.String())
	}
}

func TestRouterSitemapServed(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<urlset") {
		t.Fatalf("sitemap body should contain a urlset, got %s", w.Body.String())
	}
}
