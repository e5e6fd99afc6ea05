package app_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/app"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/config"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	cfg, err := config.FromEnv(func(string) (string, bool) { return "", false })
	require.NoError(t, err)

	router, err := app.NewRouter(app.Deps{
		Config:   cfg,
		DB:       db,
		Logger:   zap.NewNop(),
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	return router
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeKind(t *testing.T, w *httptest.ResponseRecorder) apperror.Kind {
	t.Helper()
	env, err := response.Decode[any](w.Body)
	require.NoError(t, err)
	require.False(t, env.OK())
	assert.NotEmpty(t, env.Err().RequestID())
	return env.Err().Kind()
}

func TestRouter_Healthz(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"status":"ok"}}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_UnknownRoutesAnswerEnvelopes(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.KindNotFound, decodeKind(t, w))

	w = do(r, http.MethodDelete, "/healthz", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, apperror.KindNotFound, decodeKind(t, w))
}

func TestRouter_ProtectedRoutesNeedAToken(t *testing.T) {
	r := newTestRouter(t)

	for _, target := range []string{"/api/v1/profiles", "/api/v1/tenant", "/api/v1/auth/me", "/api/v1/rbac/permissions"} {
		w := do(r, http.MethodGet, target, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
		assert.Equal(t, apperror.KindUnauthorized, decodeKind(t, w), target)
	}
}

func TestRouter_LoginRejectsMalformedJSON(t *testing.T) {
	w := do(newTestRouter(t), http.MethodPost, "/api/v1/auth/login", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.KindValidationError, decodeKind(t, w))
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter(t)
	do(r, http.MethodGet, "/healthz", "")

	w := do(r, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `carnet_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}
