package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zestagio/web-ble/internal/middlewares"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lg := zap.New(core)

	e := echo.New()
	e.Use(middlewares.NewRequestLogger(lg))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "index") })

	cases := []struct {
		path     string
		expMsg   string
		expLevel zapcore.Level
		expCode  int
	}{
		{path: "/", expMsg: "success", expLevel: zapcore.InfoLevel, expCode: http.StatusOK},
		{path: "/nonexistent", expMsg: "client error", expLevel: zapcore.WarnLevel, expCode: http.StatusNotFound},
	}

	for _, tt := range cases {
		t.Run(tt.path, func(t *testing.T) {
			_ = logs.TakeAll()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.expCode, rec.Code)

			entries := logs.TakeAll()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expMsg, entries[0].Message)
			assert.Equal(t, tt.expLevel, entries[0].Level)
			assert.Equal(t, tt.path, entries[0].ContextMap()["path"])
			assert.EqualValues(t, tt.expCode, entries[0].ContextMap()["status"])
		})
	}
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lg := zap.New(core)

	e := echo.New()
	e.Use(middlewares.NewRecovery(lg))
	e.GET("/", func(echo.Context) error { panic("index.html is gone") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, http.MethodGet, fields["method"])
	assert.Equal(t, "/", fields["path"])
	assert.Equal(t, "/", fields["route"])
	assert.Contains(t, fields["error"], "index.html is gone")
}

func TestRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lg := zap.New(core)

	e := echo.New()
	e.Use(middlewares.NewRequestID(), middlewares.NewRequestLogger(lg))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "index") })

	t.Run("generated", func(t *testing.T) {
		_ = logs.TakeAll()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(echo.HeaderXRequestID)
		_, err := uuid.Parse(id)
		require.NoError(t, err)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, id, entries[0].ContextMap()["request_id"])
	})

	t.Run("from client", func(t *testing.T) {
		_ = logs.TakeAll()

		req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
		req.Header.Set(echo.HeaderXRequestID, "ble-42")

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "ble-42", rec.Header().Get(echo.HeaderXRequestID))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "ble-42", entries[0].ContextMap()["request_id"])
	})
}
