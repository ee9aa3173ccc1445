package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func newBufferLogger(t *testing.T, lvl Level, format Format) (*ZapLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := New(Options{
		Level:  lvl,
		Format: format,
		App:    "pet-clients",
		Output: zapcore.AddSync(&buf),
	})
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestJSONOutput_IncludesBaseAndFields(t *testing.T) {
	l, buf := newBufferLogger(t, Info, FormatJSON)

	l.With(map[string]any{"component": "clients"}).Info("loaded", map[string]any{
		"count": 3,
		"err":   errors.New("boom"),
		"  ":    "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "pet-clients", entry["app"])
	assert.Equal(t, "clients", entry["component"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, "  ")
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(t, Warn, FormatText)

	l.Debug("hidden", nil)
	l.Info("hidden too", nil)
	l.Warn("visible", map[string]any{"kind": "read_failure"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.With(map[string]any{"a": 1}).Error("nothing", nil)
	assert.NoError(t, l.Sync())
}
