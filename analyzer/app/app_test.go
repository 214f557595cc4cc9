package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gomahjong/analyzer/container"
	"gomahjong/common/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName:  "analyzer",
		Log:      config.LogConf{Level: "info"},
		HttpPort: 0,
		Engine: config.EngineConf{
			CacheMaxCost: 1 << 10,
			CacheTtl:     time.Minute,
			BatchWorkers: 2,
			BatchLimit:   8,
		},
	}
}

func TestNewServer_Middlewares(t *testing.T) {
	cfg := testConfig()
	c, err := container.NewAnalyzerContainer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewAnalyzerContainer: %v", err)
	}
	defer c.Close()

	s := newServer(cfg, c)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tiles", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id header missing")
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("cors header missing")
	}
}

func TestRun_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, testConfig()) }()
	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not stop")
	}
}
