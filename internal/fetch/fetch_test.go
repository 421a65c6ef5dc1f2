package fetch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newTestClient(baseURL string) *Client {
	c := New(baseURL)
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	c.retryInterval = time.Millisecond
	return c
}

func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("User-Agent = %q, want %q", got, UserAgent)
		}
		if r.URL.Path != "/oesterreich/schneewerte/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	body, err := newTestClient(server.URL).Get("/oesterreich/schneewerte/")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !strings.Contains(body, "ok") {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestGetRetriesServerErrors(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer server.Close()

	body, err := newTestClient(server.URL).Get("/")
	if err != nil {
		t.Fatalf("Get failed after retries: %v", err)
	}
	if body != "recovered" {
		t.Errorf("body = %q", body)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestGetClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Get("/missing"); err == nil {
		t.Fatal("expected error for 404")
	}
	if calls.Load() != 1 {
		t.Errorf("404 should not be retried, got %d attempts", calls.Load())
	}
}

func TestCountriesHaveOverviewPaths(t *testing.T) {
	for name, path := range Countries {
		if !strings.HasPrefix(path, "/") || !strings.HasSuffix(path, "/") {
			t.Errorf("country %q has malformed path %q", name, path)
		}
	}
}
