package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/rocketscienceinc/noughts-and-crosses/internal"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/config"
)

func execute(t *testing.T, input io.Reader, args ...string) (string, error) {
	t.Helper()

	stdout, _, err := executeWithStderr(t, input, args...)

	return stdout, err
}

func executeWithStderr(t *testing.T, input io.Reader, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("CONSOLE_CLEAR_SCREEN", "false")
	t.Setenv("CONSOLE_COLOR", "false")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "info")

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetIn(input)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yml")))
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "noughts", rootCmd.Use)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestRootCmd_PlaysAGame(t *testing.T) {
	// When: the root command runs with a winning script
	output, err := execute(t, strings.NewReader("TL\nTM\nML\nMM\nBL\n"))

	// Then: the game ends with a winner and the score counts it
	require.NoError(t, err)
	assert.Contains(t, output, "is the winner!!!!!!")
	assert.Contains(t, output, "Played: 1")
}

func TestRootCmd_InputClosed(t *testing.T) {
	_, err := execute(t, strings.NewReader("TL\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "input closed")
}

func TestRootCmd_KeepsLogsOffTheBoard(t *testing.T) {
	// When: a game is played at the default log level
	output, stderr, err := executeWithStderr(t, strings.NewReader("TL\nTM\nML\nMM\nBL\n"))

	// Then: the result is shown and the outcome is not logged next to it
	require.NoError(t, err)
	assert.Contains(t, output, "is the winner!!!!!!")
	assert.NotContains(t, stderr, "game finished")
}

func TestScoreCmd_NeedsRedis(t *testing.T) {
	// When: the score command runs with the in-memory scoreboard
	output, err := execute(t, strings.NewReader(""), "score")

	// Then: it refuses instead of printing an empty tally
	require.ErrorIs(t, err, app.ErrScoreboardNeedsRedis)
	assert.Empty(t, output)
}

func TestScoreCmd_ResetNeedsRedis(t *testing.T) {
	t.Cleanup(func() { resetScore = false })

	_, err := execute(t, strings.NewReader(""), "score", "--reset")

	require.ErrorIs(t, err, app.ErrScoreboardNeedsRedis)
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		logger := newLogger(&config.Config{LogLevel: "verbose"}, io.Discard)

		assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	})

	t.Run("Debug", func(t *testing.T) {
		logger := newLogger(&config.Config{LogLevel: "debug"}, io.Discard)

		assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
	})

	t.Run("Error", func(t *testing.T) {
		logger := newLogger(&config.Config{LogLevel: "error"}, io.Discard)

		assert.False(t, logger.Enabled(ctx, slog.LevelWarn))
		assert.True(t, logger.Enabled(ctx, slog.LevelError))
	})
}
