// Package api - HTTP layer tests
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vendor-tco/core/catalog"
	"vendor-tco/core/engine"
	"vendor-tco/core/factors"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cat := catalog.Builtin()
	eng := engine.New(factors.NewInMemoryRepository(), cat)
	orch := engine.NewOrchestrator(eng, 2)
	return NewServer(eng, orch, cat, "test", []string{"*"})
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}

func TestVendorsListsBuiltins(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/vendors", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("vendors status = %d, want 200", rec.Code)
	}
	var summaries []VendorSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode vendors: %v", err)
	}
	if len(summaries) == 0 {
		t.Fatal("no vendors returned")
	}
}

func TestCompareRejectsInvalidConfiguration(t *testing.T) {
	s := testServer(t)

	req := CompareRequest{VendorIDs: []string{"aegis-cloud"}}
	req.Configuration.Devices = -5
	req.Configuration.Users = 100
	req.Configuration.Years = 3

	rec := postJSON(t, s, "/api/compare", req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("compare status = %d, want 400", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Code != "VALIDATION_ERROR" {
		t.Fatalf("error code = %s, want VALIDATION_ERROR", resp.Code)
	}
}

func TestCalculateUnknownVendor(t *testing.T) {
	s := testServer(t)

	req := CalculateRequest{VendorID: "no-such-vendor"}
	req.Configuration.Devices = 100
	req.Configuration.Users = 50
	req.Configuration.Years = 3

	rec := postJSON(t, s, "/api/calculate", req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("calculate status = %d, want 404", rec.Code)
	}
}

func TestCalculateReturnsResultAndHash(t *testing.T) {
	s := testServer(t)

	req := CalculateRequest{VendorID: "aegis-cloud"}
	req.Configuration.Devices = 1000
	req.Configuration.Users = 500
	req.Configuration.Years = 3

	rec := postJSON(t, s, "/api/calculate", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("calculate status = %d, want 200", rec.Code)
	}
	var resp CalculateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode calculate body: %v", err)
	}
	if resp.Result == nil {
		t.Fatal("missing result")
	}
	if resp.ContentHash == "" {
		t.Fatal("missing content hash")
	}
	if resp.Result.VendorID != "aegis-cloud" {
		t.Fatalf("result vendor = %s, want aegis-cloud", resp.Result.VendorID)
	}
}

func TestCompareBadJSON(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/compare", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
