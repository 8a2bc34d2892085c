package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gostudio/internal/app"
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "gostudio-app",
	Short:   "Interactive 2D drawing editor",
	Long:    `GoStudio is a vector drawing editor with endpoint snapping, alignment guides and undo.`,
	Version: version.GetFullVersion(),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			editor.SetLogger(logger)
			gg.SetLogger(logger)
		}
		return app.Run(app.Options{ConfigPath: configPath})
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Settings file (TOML), reloaded on change")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log editor events to stderr")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
