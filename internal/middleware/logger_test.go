package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	e := echo.New()
	e.Use(Logger)

	var loggedRequestID bool
	e.GET("/ok", func(c echo.Context) error {
		var ctxBuf bytes.Buffer
		logger := zerolog.Ctx(c.Request().Context()).Output(&ctxBuf)
		logger.Info().Msg("")
		loggedRequestID = bytes.Contains(ctxBuf.Bytes(), []byte("request_id"))
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/fail", func(c echo.Context) error {
		return errors.New("boom")
	})

	t.Run("Generates a request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
		assert.True(t, loggedRequestID)
		assert.Contains(t, buf.String(), `"endpoint":"/ok"`)
	})

	t.Run("Keeps the caller's request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	})

	t.Run("Handler errors are logged with their status", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), `"status":500`)
	})
}
