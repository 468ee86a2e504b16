package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func newTestServer() *Server {
	return NewServer(8780, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postRender(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestRenderEndpoint(t *testing.T) {
	srv := newTestServer()
	w := postRender(t, srv, `{"markdown":"Hello **world** @a_b"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp RenderResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, err := uuid.Parse(resp.ID); err != nil {
		t.Errorf("id %q is not a uuid: %v", resp.ID, err)
	}
	if resp.ParseMode != "HTML" {
		t.Errorf("parse_mode = %q, want HTML", resp.ParseMode)
	}
	if resp.HTML != "Hello <b>world</b> @a_b" {
		t.Errorf("html = %q", resp.HTML)
	}
	if diff := cmp.Diff([]string{resp.HTML}, resp.Chunks); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEndpoint_Split(t *testing.T) {
	srv := newTestServer()
	w := postRender(t, srv, `{"markdown":"aaaa\nbbbb\ncccc","max_length":9}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp RenderResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if diff := cmp.Diff([]string{"aaaa\nbbbb", "cccc"}, resp.Chunks); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEndpoint_Plain(t *testing.T) {
	srv := newTestServer()
	w := postRender(t, srv, `{"markdown":"**bold** and _it_","plain":true}`)

	var resp RenderResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ParseMode != "" {
		t.Errorf("parse_mode = %q, want empty", resp.ParseMode)
	}
	if resp.HTML != "bold and it" {
		t.Errorf("html = %q", resp.HTML)
	}
}

func TestRenderEndpoint_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"markdown":`},
		{"empty markdown", `{"markdown":"   "}`},
		{"missing markdown", `{}`},
	}

	srv := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRender(t, srv, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/nonexistent", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRenderEndpoint_MethodNotAllowed(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/v1/render", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
