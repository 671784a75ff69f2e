package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("creates console logger", func(t *testing.T) {
		l, err := New(DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("writes json lines to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "relay.log")
		l, err := New(&Config{Level: "debug", Format: "json", Output: path})
		require.NoError(t, err)

		l.Info("order forwarded", zap.String("order_id", "PO-1"))
		require.NoError(t, l.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"order forwarded"`)
		assert.Contains(t, string(data), `"order_id":"PO-1"`)
	})

	t.Run("fails for an unwritable output path", func(t *testing.T) {
		_, err := New(&Config{Output: filepath.Join(t.TempDir(), "missing", "relay.log")})
		assert.Error(t, err)
	})

	t.Run("tees entries into extra cores", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		l, err := New(&Config{Level: "info", Format: "json", Output: "stderr"}, core)
		require.NoError(t, err)

		l.Info("backorder sent")
		require.Equal(t, 1, recorded.Len())
		assert.Equal(t, "backorder sent", recorded.All()[0].Message)
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestNewForEnvironment(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		l, err := NewForEnvironment(env)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}

func TestSync(t *testing.T) {
	assert.NoError(t, Sync(zap.NewNop()))
}
