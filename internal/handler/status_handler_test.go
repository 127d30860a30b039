package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func getJSON(t *testing.T, handlerFunc echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	if err := handlerFunc(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestHealth(t *testing.T) {
	h := NewStatusHandler("sheet-123", true, false, true)

	rec := getJSON(t, h.Health, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if payload["status"] != "healthy" {
		t.Fatalf("status=%v", payload["status"])
	}
	if payload["spreadsheetId"] != "sheet-123" {
		t.Fatalf("spreadsheetId=%v", payload["spreadsheetId"])
	}
	if payload["hasSearchKey"] != true || payload["hasFinderKey"] != false {
		t.Fatalf("key flags wrong: %v", payload)
	}
}

func TestRoot(t *testing.T) {
	h := NewStatusHandler("", false, false, false)

	rec := getJSON(t, h.Root, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}

	var payload struct {
		Service   string            `json:"service"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if payload.Service != "LinkedIn Data Extractor" {
		t.Fatalf("service=%q", payload.Service)
	}
	if payload.Endpoints["extractAll"] != "POST /webhook/extract-all" {
		t.Fatalf("endpoints=%v", payload.Endpoints)
	}
}
