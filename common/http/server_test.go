package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gomahjong/common/utils"
)

func newTestServer() *HttpServer {
	s := NewHttpServer(WithMode("release"))
	s.Use(RecoveryMiddleware(), RequestIDMiddleware(), CorsMiddleware(), LoggerMiddleware())
	s.GET("/ping", func(c *Context) error {
		c.Success(map[string]string{"message": "pong"})
		return nil
	})
	v1 := s.Group("/api/v1")
	v1.GET("/boom", func(c *Context) error {
		panic("boom")
	})
	v1.POST("/fail", func(c *Context) error {
		return errors.New("broken")
	})
	return s
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestServer_SuccessEnvelopeAndRequestID(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp := decode(t, rec); resp.Code != CodeSuccess || resp.Message != MsgSuccess {
		t.Fatalf("response = %+v", resp)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID")
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Fatalf("request id = %q, want the caller's", got)
	}
}

func TestServer_ErrorsBecome500(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/fail", nil))
	if rec.Code != http.StatusInternalServerError || decode(t, rec).Code != CodeServerError {
		t.Fatalf("handler error: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("panic: status %d", rec.Code)
	}
}

func TestServer_CorsPreflight(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/fail", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("preflight: status %d headers %v", rec.Code, rec.Header())
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	s := NewHttpServer(WithMode("release"))
	s.Use(RateLimitMiddleware(utils.NewRateLimiter(0, 2)))
	s.GET("/ping", func(c *Context) error {
		c.Success(nil)
		return nil
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, rec.Code)
		}
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if resp := decode(t, rec); resp.Code != CodeTooMany {
		t.Fatalf("code = %d", resp.Code)
	}
}
