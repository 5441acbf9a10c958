package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brainrot-value-bot/internal/commands"
	"brainrot-value-bot/internal/store"
	"brainrot-value-bot/internal/types"
)

type nullNotifier struct{}

func (nullNotifier) Send(context.Context, string, types.Message) error { return nil }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("VALUES_LOG_DIR", t.TempDir())
	files, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	err = files.UpdateData(func(m map[string]types.ValuationRecord) error {
		m["garama"] = types.ValuationRecord{Value: 2100, Demand: types.DemandHigh, Icon: "🧠", Source: types.SourceAuto}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(commands.NewHandler(files, nullNotifier{}), ":0")
}

func TestCommandEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"command":"value","options":{"name":"garama"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp commands.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Embed == nil || resp.Embed.Title != "🧠 GARAMA" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCommandEndpointBadBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/command", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
