package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	require.Equal(t, slog.LevelDebug, logLevelFromEnv())

	t.Setenv("LOG_LEVEL", "ERROR")
	require.Equal(t, slog.LevelError, logLevelFromEnv())

	t.Setenv("LOG_LEVEL", "nonsense")
	require.Equal(t, slog.LevelInfo, logLevelFromEnv())

	t.Setenv("LOG_LEVEL", "")
	require.Equal(t, slog.LevelInfo, logLevelFromEnv())
}
