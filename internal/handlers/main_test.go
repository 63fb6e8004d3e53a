// internal/handlers/main_test.go
package handlers_test

import (
	"io"
	"log"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"

	"cohort_lms/internal/config"
	"cohort_lms/internal/handlers"

	"gorm.io/gorm"
)

var (
	testConfig *config.Config
	testLogger *slog.Logger
)

// TestMain は設定を一度だけ読み込み、認証をヘッダー方式に切り替える
func TestMain(m *testing.M) {
	if err := config.LoadConfig("../../configs"); err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
	}
	cfg := config.Cfg
	// テスト中は X-User-ID / X-User-Role で認証する
	cfg.Auth.Enabled = false
	testConfig = &cfg

	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

	os.Exit(m.Run())
}

// newTestServer はモックのサービスでルーター全体を組み立てる
// db はヘルスチェックでのみ使う
func newTestServer(t *testing.T, db *gorm.DB, svc handlers.Services) *httptest.Server {
	t.Helper()
	router, err := handlers.NewRouter(testConfig, db, svc, testLogger)
	if err != nil {
		t.Fatalf("Failed to build router: %v", err)
	}
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}
