package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"custodia/internal/deletion"
	"custodia/internal/deletion/handler"
	"custodia/internal/deletion/handler/mocks"
	"custodia/internal/jwtactor"
	"custodia/internal/platform/logger"
	transport "custodia/internal/transport/http"
)

type staticCheck struct {
	err error
}

func (c staticCheck) Health(context.Context) error { return c.err }

func newRouter(t *testing.T, service *mocks.MockService, checks map[string]transport.HealthChecker) (http.Handler, *jwtactor.Service) {
	t.Helper()
	validator := jwtactor.NewService("test-key", "custodia", "custodia-admin")
	router := transport.New(transport.Deps{
		Deletions: handler.New(service, logger.New()),
		Validator: validator,
		Logger:    logger.New(),
		Checks:    checks,
	})
	return router, validator
}

func TestHealthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	t.Run("reports ok", func(t *testing.T) {
		router, _ := newRouter(t, service, map[string]transport.HealthChecker{
			"database": staticCheck{},
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("reports degraded dependencies", func(t *testing.T) {
		router, _ := newRouter(t, service, map[string]transport.HealthChecker{
			"database": staticCheck{err: errors.New("connection refused")},
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _ := newRouter(t, mocks.NewMockService(ctrl), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkflowRoutesRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	router, validator := newRouter(t, service, nil)

	t.Run("rejects a missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pendingdeletions/subj-1", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepts a valid token", func(t *testing.T) {
		service.EXPECT().
			Get(gomock.Any(), gomock.Any(), "subj-1").
			Return(&deletion.PendingDeletion{SubjectID: "subj-1"}, nil)

		token, err := validator.GenerateToken("dp@clinic.example", []string{"alpine-cohort"}, deletion.RoleDataProtection, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/pendingdeletions/subj-1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
