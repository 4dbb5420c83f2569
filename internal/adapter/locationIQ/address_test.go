package locationIQ

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(srvURL string) *LocationIQClient {
	c := New("test-key", 2*time.Second)
	c.domain = srvURL
	return c
}

func TestResolve_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Main St 1" {
			t.Errorf("unexpected query: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"32.05","lon":"34.78"}]`))
	}))
	defer srv.Close()

	lat, lng, err := newTestClient(srv.URL).Resolve(context.Background(), "Main St 1")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if lat != 32.05 || lng != 34.78 {
		t.Fatalf("unexpected coordinates: (%v, %v)", lat, lng)
	}
}

func TestResolve_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Resolve(context.Background(), "nowhere")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestResolve_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Resolve(context.Background(), "Main St 1")
	if err == nil {
		t.Fatalf("expected error on upstream 500")
	}
	if errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("upstream failure must not be reported as not-found")
	}
}

func TestResolve_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	_, _, err := newTestClient(srv.URL).Resolve(context.Background(), "Main St 1")
	if err == nil {
		t.Fatalf("expected decode error")
	}
}
