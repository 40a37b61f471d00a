package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/danaholt/giftwish/internal/auth"
	"github.com/danaholt/giftwish/internal/database/testutil"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, err := NewRouter(Options{
		DB:       testutil.MustOpenTestDB(t),
		Registry: auth.NewRegistry(),
	})
	require.NoError(t, err)
	return router
}

func TestNewRouterRequiresDependencies(t *testing.T) {
	_, err := NewRouter(Options{})
	require.Error(t, err)

	_, err = NewRouter(Options{DB: testutil.MustOpenTestDB(t)})
	require.Error(t, err)
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestMetricsRoute(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "go_goroutines")
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/events/1"},
		{http.MethodPost, "/api/events/1/items"},
		{http.MethodPost, "/api/items/1/claims"},
		{http.MethodDelete, "/api/items/1/claims"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		require.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestUnknownRouteEnvelope(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), `"success":false`)
	require.Contains(t, w.Body.String(), `"NOT_FOUND"`)
}

func TestEndToEndFlow(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events",
		strings.NewReader(`{"name":"Wedding","date":"2027-05-01","hostEmail":"host@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/events/1", nil)
	req2.AddCookie(cookie)
	router.ServeHTTP(w2, req2)
	require.Equal(t, http.StatusOK, w2.Code)
	require.Contains(t, w2.Body.String(), `"role":"host"`)
}
