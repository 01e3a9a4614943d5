package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/config"
	"github.com/ib-77/ropcmd/pkg/rop/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	var jsonBuf, textBuf bytes.Buffer
	logger.New(&jsonBuf, "warn", "json").Info("hidden")
	logger.New(&jsonBuf, "warn", "json").Warn("shown", logger.Command("Publish"))
	logger.New(&textBuf, "debug", "text").Debug("shown", logger.Count("items", 3))

	assert.NotContains(t, jsonBuf.String(), "hidden")
	assert.Contains(t, jsonBuf.String(), `"command":"Publish"`)
	assert.Contains(t, textBuf.String(), "items=3")

	assert.NotNil(t, logger.FromConfig(config.Config{LogLevel: "info", LogFormat: "json"}))
}

func TestResultAttr(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Result(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Result(rop.Empty[int]()).Equal(slog.Attr{}))

	var buf bytes.Buffer
	logger.New(&buf, "info", "text").Info("done", logger.Result(rop.Failure[int](rop.NewTypedError("books.missing", ""))))

	out := buf.String()
	assert.Contains(t, out, "result.status=failure")
	assert.Contains(t, out, "result.error=missing")
	assert.Contains(t, out, "result.error_type=books.missing")
}

func TestErrorAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
	assert.True(t, logger.ErrorType(errors.New("plain")).Equal(slog.Attr{}))
	assert.True(t, logger.Command("").Equal(slog.Attr{}))
	assert.True(t, logger.Status("").Equal(slog.Attr{}))

	attr := logger.Errors(nil, errors.New("b"))
	assert.Equal(t, "errors", attr.Key)
	assert.Len(t, attr.Value.Group(), 1)
	assert.Equal(t, "1", attr.Value.Group()[0].Key)
}
