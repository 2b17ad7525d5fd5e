package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

func newTestRest(pinger fakePinger) *Rest {
	store := &storage.Storage{}
	return &Rest{
		Logger:  logging.SetupLogging("error"),
		Port:    "0",
		Service: service.NewService(store, nil, auth.NewTokenManager("secret", time.Minute)),
		DB:      pinger,
	}
}

func TestHandler_Status(t *testing.T) {
	handler := newTestRest(fakePinger{}).Handler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	down := newTestRest(fakePinger{err: errors.New("down")}).Handler()
	w = httptest.NewRecorder()
	down.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_OpenAPIListsEveryRoute(t *testing.T) {
	handler := newTestRest(fakePinger{}).Handler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&doc))

	expected := map[string][]string{
		"/v1/analytics/balance":                {"get"},
		"/v1/analytics/by-category":            {"get"},
		"/v1/analytics/monthly/{year}/{month}": {"get"},
		"/v1/auth/register":                    {"post"},
		"/v1/auth/login":                       {"post"},
		"/v1/auth/me":                          {"get"},
		"/v1/categories":                       {"get", "post"},
		"/v1/categories/{id}":                  {"get", "put", "delete"},
		"/v1/transactions":                     {"get", "post"},
		"/v1/transactions/{id}":                {"get", "put", "delete"},
		"/v1/transactions/export/csv":          {"get"},
		"/v1/transactions/import/csv":          {"post"},
		"/v1/goals":                            {"get", "post"},
		"/v1/goals/{id}":                       {"get", "put", "delete"},
	}
	for path, methods := range expected {
		require.Contains(t, doc.Paths, path)
		for _, method := range methods {
			assert.Contains(t, doc.Paths[path], method, "%s %s", method, path)
		}
	}
}

func TestHandler_ProtectedRouteNeedsToken(t *testing.T) {
	handler := newTestRest(fakePinger{}).Handler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/balance", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestServe_StopsOnCancel(t *testing.T) {
	rest := newTestRest(fakePinger{})
	rest.Port = "0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rest.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
