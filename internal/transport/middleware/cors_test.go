package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/feedback-insights/internal/config"
)

func testCORSConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   "http://localhost:3000, http://127.0.0.1:3000",
		AllowedMethods:   "GET,POST,OPTIONS",
		AllowedHeaders:   "Content-Type,X-Request-Id",
		AllowCredentials: true,
		MaxAge:           86400,
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	h := CORS(testCORSConfig())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not be called for preflight")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/feedback", nil)
	req.Header.Set("Origin", "http://127.0.0.1:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	want := map[string]string{
		"Access-Control-Allow-Origin":      "http://127.0.0.1:3000",
		"Access-Control-Allow-Methods":     "GET,POST,OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type,X-Request-Id",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "86400",
		"Vary":                             "Origin",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestCORS_PreflightDisallowedOrigin(t *testing.T) {
	t.Parallel()

	h := CORS(testCORSConfig())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler should not be called for preflight")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/feedback", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no Access-Control-Allow-Origin, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "" {
		t.Errorf("expected no Access-Control-Allow-Methods, got %q", got)
	}
}

func TestCORS_SimpleRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{"allowed", "http://localhost:3000", "http://localhost:3000"},
		{"disallowed", "http://localhost:4000", ""},
		{"no origin", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			h := CORS(testCORSConfig())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/feedback_and_insights?username=alice", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if !called {
				t.Fatal("expected handler to be called")
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if tt.wantOrigin != "" && rec.Header().Get("Access-Control-Expose-Headers") != RequestIDHeader {
				t.Errorf("expected %s to be exposed", RequestIDHeader)
			}
		})
	}
}

func TestCORS_PlainOptionsReachesHandler(t *testing.T) {
	t.Parallel()

	called := false
	h := CORS(testCORSConfig())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodOptions, "/feedback", nil))

	if !called {
		t.Error("OPTIONS without Access-Control-Request-Method should reach the handler")
	}
}

func TestCORS_Wildcard(t *testing.T) {
	t.Parallel()

	cfg := testCORSConfig()
	cfg.AllowedOrigins = "*"
	cfg.AllowCredentials = false
	h := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anything.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anything.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want empty", got)
	}
}
