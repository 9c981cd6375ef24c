package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_DefaultNop(t *testing.T) {
	require.NotNil(t, Logger())
	require.False(t, Logger().Core().Enabled(zap.DebugLevel))
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Debug("hello", zap.Int("n", 1))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "hello", entry.Message)
	require.Equal(t, int64(1), entry.ContextMap()["n"])

	SetLogger(nil)
	require.False(t, Logger().Core().Enabled(zap.DebugLevel))
}
