package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gostudio/internal/config"
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/pkg/script"
	"github.com/philipparndt/gostudio/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gostudio",
	Short: "A CLI tool for replaying and inspecting drawing scripts",
	Long: `gostudio replays drawing scripts through the editor without a window.
A script is a list of pointer gestures and editor commands. The resulting
drawing can be inspected, exported as line segments or rendered to PNG.`,
	Version: version.GetFullVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Settings file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log editor events to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// replayFile parses and replays a script, exiting on error
func replayFile(filename string) (*editor.Session, script.Result) {
	settings := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		settings = loaded
	}

	s, err := script.ParseFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing script: %v\n", err)
		os.Exit(1)
	}

	session, result := script.Run(s, settings.EditorSettings())
	return session, result
}
