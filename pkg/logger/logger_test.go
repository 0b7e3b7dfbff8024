package logger

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	defer func() { _ = SetLevel("info") }()
	var buf bytes.Buffer
	l := New(WithLevel("warn"), WithWriter(&buf), WithServerName("usercenter"))
	l.Info("dropped")
	l.Warn("kept")
	require.NoError(t, l.Sync())
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
	assert.Contains(t, buf.String(), "usercenter")
}

func TestWithFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithFormat("json"), WithWriter(&buf))
	l.Info("hello", zap.Int("id", 1))
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"id":1`)
}

func TestFromWith(t *testing.T) {
	assert.Same(t, zap.L(), From(context.Background()))
	l := New(WithWriter(&bytes.Buffer{}))
	assert.Same(t, l, From(With(context.Background(), l)))
}

func TestSetLevel(t *testing.T) {
	defer func() { _ = SetLevel("info") }()
	require.NoError(t, SetLevel("DEBUG"))
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.Error(t, SetLevel("verbose"))
	assert.Equal(t, zapcore.DebugLevel, Level())
}

func TestLevelAPI(t *testing.T) {
	defer func() { _ = SetLevel("info") }()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterLog(router.Group("/v1"))

	var buf bytes.Buffer
	l := New(WithLevel("error"), WithWriter(&buf))

	tests := []struct {
		name   string
		body   string
		status int
		level  string
	}{
		{name: "debug", body: `{"level":"debug"}`, status: http.StatusNoContent, level: "debug"},
		{name: "unknown", body: `{"level":"verbose"}`, status: http.StatusBadRequest, level: "debug"},
		{name: "missing", body: `{}`, status: http.StatusBadRequest, level: "debug"},
		{name: "warn", body: `{"level":"WARN"}`, status: http.StatusNoContent, level: "warn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/log", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, w.Code)

			w = httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/log", nil))
			assert.JSONEq(t, `{"level":"`+tt.level+`"}`, w.Body.String())
		})
	}
	l.Warn("visible")
	l.Info("hidden")
	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "hidden")
}
