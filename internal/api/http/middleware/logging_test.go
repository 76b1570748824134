package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/archeolens/archeolens-server/internal/logger"
)

func setupLoggingEngine(t *testing.T) (*gin.Engine, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	engine := gin.New()
	engine.Use(NewLogging(log).Handle())
	engine.GET("/sites/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	engine.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("algo deu errado"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro"})
	})

	return engine, &buf
}

func TestLogging_Handle(t *testing.T) {
	t.Run("logs method, route and status on success", func(t *testing.T) {
		engine, buf := setupLoggingEngine(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/sites/abc", nil)
		engine.ServeHTTP(w, req)

		out := buf.String()
		assert.Contains(t, out, "HTTP request completed")
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/sites/:id")
		assert.Contains(t, out, "status=200")
		assert.NotContains(t, out, "HTTP request failed")
	})

	t.Run("logs errors with request attributes", func(t *testing.T) {
		engine, buf := setupLoggingEngine(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/broken", nil)
		engine.ServeHTTP(w, req)

		out := buf.String()
		assert.Contains(t, out, "HTTP request failed")
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/broken")
		assert.Contains(t, out, "status=500")
	})
}
