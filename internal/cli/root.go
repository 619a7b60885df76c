package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/noughts-and-crosses/internal"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/config"
)

var (
	configPath string
	resetScore bool
)

var rootCmd = &cobra.Command{
	Use:           "noughts",
	Short:         "Play noughts and crosses on the console",
	Long:          "Two players take turns typing a cell code (TL, TM, TR, ML, MM, MR, BL, BM, BR) until one of them gets three in a row.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf, err := config.Load(configPath)
		if err != nil {
			return err
		}

		return app.RunApp(cmd.Context(), newLogger(conf, cmd.ErrOrStderr()), conf, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the scoreboard",
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf, err := config.Load(configPath)
		if err != nil {
			return err
		}

		return app.ShowScore(cmd.Context(), newLogger(conf, cmd.ErrOrStderr()), conf, cmd.OutOrStdout(), resetScore)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./config.yml", "path to the config file")
	scoreCmd.Flags().BoolVar(&resetScore, "reset", false, "clear the scoreboard before printing it")
	rootCmd.AddCommand(scoreCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger - builds the logger from the configured level.
func newLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
