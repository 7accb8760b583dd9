package sl_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"salarywatch/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	attr := sl.Err(errors.New("something went wrong"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("something went wrong"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	assert.Panics(t, func() {
		_ = sl.Err(nil)
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, sl.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, sl.ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, sl.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, sl.ParseLevel("verbose"))
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := sl.New("warn", &buf)

	log.Info("hidden")
	log.Warn("shown", sl.Err(errors.New("boom")))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "error=boom")
}
