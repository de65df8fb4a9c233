package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/greethub/greeting-service/internal/api/middleware"
	"github.com/greethub/greeting-service/internal/metrics"
	"github.com/greethub/greeting-service/internal/ratelimiter"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var seen string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a request ID on the context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("generated ID is not a UUID: %v", err)
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("response header %q does not match context value %q", got, seen)
	}
}

func TestRequestID_EchoesProvided(t *testing.T) {
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-chosen-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-chosen-id" {
		t.Fatalf("expected caller ID to be echoed, got %q", got)
	}
}

func TestGetRequestID_WithoutMiddleware(t *testing.T) {
	if got := middleware.GetRequestID(context.Background()); got != "" {
		t.Fatalf("expected empty ID without middleware, got %q", got)
	}
}

// TestRequestLogger_PreservesResponse verifies the logging wrapper does not
// alter what reaches the client.
func TestRequestLogger_PreservesResponse(t *testing.T) {
	h := middleware.RequestLogger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status to pass through, got %d", rec.Code)
	}
	if rec.Body.String() != "short and stout" {
		t.Fatalf("expected body to pass through, got %q", rec.Body.String())
	}
}

func TestHTTPMetrics_CountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	h := middleware.HTTPMetrics(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Outside a chi router no pattern matches, so the request is counted
	// under the "unmatched" route label.
	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "200"))
	if got != 1 {
		t.Fatalf("expected 1 counted request, got %v", got)
	}
}

func TestThrottle_PassesRequestsThrough(t *testing.T) {
	called := false
	h := middleware.Throttle(ratelimiter.New(1000))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Fatal("expected the wrapped handler to run")
	}
}

// TestThrottle_AbandonsDeadRequests verifies a request whose context dies
// while waiting for a token never reaches the handler.
func TestThrottle_AbandonsDeadRequests(t *testing.T) {
	limiter := ratelimiter.New(1)
	// Drain the single burst token so the next request must wait.
	if err := limiter.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error draining burst: %v", err)
	}

	called := false
	h := middleware.Throttle(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		h.ServeHTTP(httptest.NewRecorder(), req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("throttle did not abandon the dead request")
	}
	if called {
		t.Fatal("expected the wrapped handler to be skipped")
	}
}
