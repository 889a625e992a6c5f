// Copyright (c) 2026 Survey Lens.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/surveylens/surveylens/testutil"
)

func TestRouter_Health(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	mux := NewRouter(conn, testutil.TestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q, want OK", rec.Body.String())
	}
}

func TestRouter_Root(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	mux := NewRouter(conn, testutil.TestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	mux := NewRouter(conn, testutil.TestConfig())

	req := httptest.NewRequest("GET", "/analytics/view", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405 for GET on a POST route", rec.Code)
	}
}

func TestRouter_SnapshotRouteWired(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	mux := NewRouter(conn, testutil.TestConfig())

	req := httptest.NewRequest("GET", "/snapshots/does-not-exist", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for an unknown snapshot id", rec.Code)
	}
}
