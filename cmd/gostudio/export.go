package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gostudio/internal/export"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [script]",
	Short: "Export the unique line segments of a drawing",
	Long: `Replay a script and write every distinct line segment as a Go literal.
Segments joining the same two points in either direction are written once.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) {
	session, _ := replayFile(args[0])
	lines := export.UniqueLines(session.Elements())

	var w io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := export.WriteLines(w, lines); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing lines: %v\n", err)
		os.Exit(1)
	}
	if exportOutput != "" {
		fmt.Printf("Exported %d line segments to %s\n", len(lines), exportOutput)
	}
}
