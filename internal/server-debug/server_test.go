package serverdebug_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/web-ble/internal/logger"
	serverdebug "github.com/zestagio/web-ble/internal/server-debug"
)

func TestServer_LoggerLevel(t *testing.T) {
	// Arrange.
	err := logger.Init(logger.NewOptions("debug"))
	require.NoError(t, err)

	srv, err := serverdebug.New(serverdebug.NewOptions(":80"))
	require.NoError(t, err)

	testSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(testSrv.Close)

	logLevelURL := testSrv.URL + "/log/level"

	cases := []struct {
		name      string
		level     string
		expStatus int
	}{
		{
			name:      "success set debug",
			level:     "debug",
			expStatus: http.StatusOK,
		},
		{
			name:      "set info",
			level:     "info",
			expStatus: http.StatusOK,
		},
		{
			name:      "set warn",
			level:     "warn",
			expStatus: http.StatusOK,
		},
		{
			name:      "set error",
			level:     "error",
			expStatus: http.StatusOK,
		},
		{
			name:      "unsupported level",
			level:     "any_invalid_level",
			expStatus: http.StatusBadRequest,
		},
		{
			name:      "empty level",
			level:     "",
			expStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			// Action.
			status := setLevel(t, logLevelURL, tt.level)

			// Assert.
			require.Equal(t, tt.expStatus, status)

			if tt.expStatus == http.StatusOK {
				lvl := getLevel(t, logLevelURL)
				assert.Equal(t, tt.level, lvl)
			}
		})
	}
}

func TestServer_Pages(t *testing.T) {
	srv, err := serverdebug.New(serverdebug.NewOptions("127.0.0.1:3079"))
	require.NoError(t, err)

	testSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(testSrv.Close)

	t.Run("index", func(t *testing.T) {
		status, body := get(t, testSrv.URL+"/")
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Web BLE Debug")
		assert.Contains(t, body, `href="/version"`)
		assert.Contains(t, body, `href="/debug/pprof/"`)
	})

	t.Run("version", func(t *testing.T) {
		status, body := get(t, testSrv.URL+"/version")
		require.Equal(t, http.StatusOK, status)

		var data map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &data))
		assert.Contains(t, data, "Main")
	})

	t.Run("debug error", func(t *testing.T) {
		status, body := get(t, testSrv.URL+"/debug/error")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "event sent", body)
	})
}

func TestServer_PagesNotFound(t *testing.T) {
	srv, err := serverdebug.New(serverdebug.NewOptions("127.0.0.1:3079"))
	require.NoError(t, err)

	testSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(testSrv.Close)

	status, body := get(t, testSrv.URL+"/css/style.css")
	require.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message": "Not Found"}`, body)
}

func TestServer_Run_AddrInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := serverdebug.New(serverdebug.NewOptions(ln.Addr().String()))
	require.NoError(t, err)

	require.Error(t, srv.Run(context.Background()))
}

func TestNew_InvalidAddr(t *testing.T) {
	_, err := serverdebug.New(serverdebug.NewOptions(""))
	require.Error(t, err)
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func setLevel(t *testing.T, url, level string) int {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url,
		io.NopCloser(strings.NewReader("level="+level)))
	require.NoError(t, err)

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()
	return resp.StatusCode
}

func getLevel(t *testing.T, url string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Level string `json:"level"`
	}
	err = json.NewDecoder(resp.Body).Decode(&data)
	require.NoError(t, err)

	return data.Level
}
