package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"treedrag.dev/treedrag/internal/config"
	"treedrag.dev/treedrag/internal/errors"
)

func TestSplog_Console(t *testing.T) {
	t.Run("prints bare messages and hides debug by default", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf})
		require.NoError(t, err)

		splog.Info("moved %s", "3")
		splog.Debug("hidden")
		splog.Warn("careful")
		require.Equal(t, "moved 3\n⚠️  careful\n", buf.String())
	})

	t.Run("debug mode prints structured attributes", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf, Debug: true})
		require.NoError(t, err)

		splog.Logger().With("session", 1).Debug("drag over", "target", "2")
		require.Equal(t, "drag over session=1 target=2\n", buf.String())
	})

	t.Run("quiet mode suppresses output", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf})
		require.NoError(t, err)

		splog.SetQuiet(true)
		require.True(t, splog.IsQuiet())
		splog.Error("nope")
		require.Empty(t, buf.String())

		splog.SetQuiet(false)
		splog.Page("raw")
		splog.Newline()
		require.Equal(t, "raw\n", buf.String())
	})
}

func TestSplog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "treedrag.log")
	var buf bytes.Buffer
	splog, err := NewSplogWithOptions(SplogOptions{
		Writer:   &buf,
		LogFile:  path,
		Rotation: config.Default().Log,
	})
	require.NoError(t, err)

	splog.Debug("only in the file")
	splog.Info("everywhere")
	require.NoError(t, splog.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "only in the file")
	require.Contains(t, string(data), "everywhere")
	require.Equal(t, "everywhere\n", buf.String())
}

func TestCreateLumberjackLogger(t *testing.T) {
	t.Setenv("TREEDRAG_LOG_MAX_SIZE", "5")
	t.Setenv("TREEDRAG_LOG_MAX_BACKUPS", "not-a-number")
	t.Setenv("TREEDRAG_LOG_MAX_AGE", "0")

	logger := createLumberjackLogger("x.log", config.Log{MaxSize: 1, MaxBackups: 2, MaxAge: 30})
	require.Equal(t, 5, logger.MaxSize)
	require.Equal(t, 2, logger.MaxBackups)
	require.Equal(t, 30, logger.MaxAge)
}

func TestLogFilePath(t *testing.T) {
	require.Empty(t, LogFilePath(config.Log{}))
	require.Equal(t, "/var/log/treedrag.log", LogFilePath(config.Log{File: "/var/log/treedrag.log"}))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "logs", "td.log"), LogFilePath(config.Log{File: "~/logs/td.log"}))
}

func TestPromptIntent_Disabled(t *testing.T) {
	t.Setenv("TREEDRAG_TEST_NO_INTERACTIVE", "1")
	_, err := PromptIntent("1", "2")
	require.ErrorIs(t, err, errors.ErrInteractiveDisabled)
	require.Equal(t, []string{"above", "over", "below"}, IntentOptions())
}
