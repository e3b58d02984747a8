package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"crm-intent-router/pkg/log"
)

func newTestEngine(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.RequestID(), m.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newTestEngine(New(log.NewNop(), Config{}))

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get(HeaderRequestID) != "abc-123" {
			t.Errorf("expected echoed request id, got %q", w.Header().Get(HeaderRequestID))
		}
		if w.Body.String() != "abc-123" {
			t.Errorf("expected id in context, got %q", w.Body.String())
		}
	})

	t.Run("assigns new id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		id := w.Header().Get(HeaderRequestID)
		if len(id) != 36 || w.Body.String() != id {
			t.Errorf("expected generated uuid, got header %q body %q", id, w.Body.String())
		}
	})
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and one token per second.
	r := newTestEngine(New(log.NewNop(), Config{RateLimitEnabled: true, RequestsPerMin: 60}))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 6; i++ {
		if code := send("192.0.2.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := send("192.0.2.1"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}
	if code := send("192.0.2.2"); code != http.StatusOK {
		t.Errorf("other clients must not be limited, got %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newTestEngine(New(log.NewNop(), Config{RateLimitEnabled: false, RequestsPerMin: 1}))

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 with limiter off, got %d", w.Code)
		}
	}
}

func TestExtractIP(t *testing.T) {
	tcs := map[string]struct {
		headers map[string]string
		remote  string
		want    string
	}{
		"forwarded for": {headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, remote: "10.0.0.2:1234", want: "203.0.113.7"},
		"real ip":       {headers: map[string]string{"X-Real-IP": "203.0.113.8"}, remote: "10.0.0.2:1234", want: "203.0.113.8"},
		"remote addr":   {remote: "198.51.100.4:5678", want: "198.51.100.4"},
		"bare remote":   {remote: "198.51.100.5", want: "198.51.100.5"},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := extractIP(req); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
