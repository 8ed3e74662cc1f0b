package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
	assert.Equal(t, "error", Error.String())
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("pretty"))
}

func TestFromZap_FieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core)).With(map[string]any{"visitor_id": "v1"})

	log.Warn("checkout status failed", map[string]any{
		"err":     errors.New("boom"),
		"attempt": 3,
		"":        "ignorado",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, zapcore.WarnLevel, e.Level)
	assert.Equal(t, "checkout status failed", e.Message)

	ctx := e.ContextMap()
	assert.Equal(t, "v1", ctx["visitor_id"])
	assert.Equal(t, "boom", ctx["err"])
	assert.EqualValues(t, 3, ctx["attempt"])
	assert.NotContains(t, ctx, "")
}

func TestWith_EmptyReturnsSame(t *testing.T) {
	l := Nop()
	assert.Same(t, l, l.With(nil))
}
