// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/fortune-wheel/cliparse"
	"github.com/danielhkuo/fortune-wheel/db"
	"github.com/danielhkuo/fortune-wheel/notify"
	"github.com/danielhkuo/fortune-wheel/prize"
	"github.com/danielhkuo/fortune-wheel/testutil"
	"github.com/danielhkuo/fortune-wheel/wheel"
)

func newTestRouter(t *testing.T, cfg cliparse.Config) (*http.ServeMux, *db.SpinStore) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	store := db.NewSpinStore(conn, testutil.NewClock())
	sel, err := prize.NewSelector(prize.DefaultCatalog(), cfg.SpecialPrizeChance)
	if err != nil {
		t.Fatalf("Failed to create selector: %v", err)
	}
	dispatcher := notify.NewDispatcher(notify.LogNotifier{}, cfg.NotifyTimeout)
	t.Cleanup(dispatcher.Wait)

	svc := wheel.NewService(store, sel, dispatcher, prize.GlobalSource())
	return NewRouter(svc, cfg), store
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "fortune-wheel API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	// Generate at least one request metric first
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/prizes", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "fortune_wheel_http_requests_total") {
		t.Error("Expected request counter in metrics output")
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	// 400, 401, 404 are all valid responses depending on handler logic
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/metrics"},
		{"GET", "/prizes"},
		{"POST", "/spins"},
		{"GET", "/spins"},
		{"GET", "/spins/nationalId/123456789"},
		{"GET", "/spins/special-prize"},
		{"PATCH", "/spins/test-id/disburse"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"DELETE a spin", "DELETE", "/spins", http.StatusMethodNotAllowed},
		{"POST to disburse", "POST", "/spins/test-id/disburse", http.StatusMethodNotAllowed},
		{"unknown path", "GET", "/coupons", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestSpecialPrizeRoute(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/spins/special-prize", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"awarded":false`) {
		t.Errorf("Expected special prize response, got %s", w.Body.String())
	}
}

func TestAdminRoutesRequireKey(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux, store := newTestRouter(t, cfg)
	spin := testutil.CreateTestSpin(t, store, "123456789", "Postre GRATIS", false)

	testCases := []struct {
		name           string
		method         string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{"list without key", "GET", "/spins", nil, http.StatusUnauthorized},
		{"list with wrong key", "GET", "/spins", map[string]string{"X-Admin-Key": "wrong"}, http.StatusUnauthorized},
		{"list with key", "GET", "/spins", testutil.AdminHeaders(), http.StatusOK},
		{"disburse without key", "PATCH", "/spins/" + spin.ID + "/disburse", nil, http.StatusUnauthorized},
		{"disburse with key", "PATCH", "/spins/" + spin.ID + "/disburse", testutil.AdminHeaders(), http.StatusOK},
		{"disburse unknown with key", "PATCH", "/spins/missing/disburse", testutil.AdminHeaders(), http.StatusNotFound},
		{"public lookup needs no key", "GET", "/spins/nationalId/123456789", nil, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, nil, tc.headers))
			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}

func TestAdminRoutesOpenWithoutConfiguredKey(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.AdminKey = ""
	mux, _ := newTestRouter(t, cfg)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/spins", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestCreateSpinThroughRouter(t *testing.T) {
	mux, _ := newTestRouter(t, testutil.GetTestConfig())

	body := map[string]string{
		"customerName": "Ana",
		"nationalId":   "123456789",
		"email":        "a@x.com",
		"phoneNumber":  "88887777",
		"branch":       "Escazú",
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/spins", body, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/spins", body, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)
}
