package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"metreg/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.SourceConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func TestClient_Records(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/main-table/" {
			t.Errorf("path = %q, want /main-table/", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"equipment_name":"Манометр","status":"status_fit"},{"equipment_name":"Весы"}]`))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).Records(context.Background())
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if name, _ := records[0].String("equipment_name"); name != "Манометр" {
		t.Errorf("first record name = %q", name)
	}
}

func TestClient_Archive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/archive/" {
			t.Errorf("path = %q, want /archive/", r.URL.Path)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	records, err := newTestClient(srv.URL).Archive(context.Background())
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
}

func TestClient_unexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Records(context.Background()); err == nil {
		t.Error("Records succeeded on a 503 response")
	}
}

func TestClient_malformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).Records(context.Background()); err == nil {
		t.Error("Records succeeded on a non-array body")
	}
}

func TestClient_contextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestClient(srv.URL).Records(ctx); err == nil {
		t.Error("Records succeeded with a cancelled context")
	}
}
