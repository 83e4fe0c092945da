package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/testutil"
	"gorm.io/gorm"
)

func setupHealthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(db, time.Now().Add(-time.Minute), "test").RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	router := setupHealthRouter(testutil.NewTestDB(t))

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decode[map[string]any](t, w)
	if body["status"] != "ok" || body["version"] != "test" {
		t.Fatalf("unexpected body: %v", body)
	}
	if up := body["uptime"].(float64); up < 60 {
		t.Fatalf("expected uptime of at least 60s, got %v", up)
	}
}

func TestReady(t *testing.T) {
	router := setupHealthRouter(testutil.NewTestDB(t))

	w := doRequest(t, router, http.MethodGet, "/ready", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decode[map[string]any](t, w)
	db := body["db"].(map[string]any)
	if db["status"] != "up" || db["driver"] != "sqlite" {
		t.Fatalf("unexpected db section: %v", db)
	}
}

func TestReady_DatabaseDown(t *testing.T) {
	gdb := testutil.NewEmptyDB(t)
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB failed: %v", err)
	}
	sqlDB.Close()

	router := setupHealthRouter(gdb)

	w := doRequest(t, router, http.MethodGet, "/ready", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}

	body := decode[map[string]any](t, w)
	if body["status"] != "unhealthy" {
		t.Fatalf("unexpected body: %v", body)
	}
}
