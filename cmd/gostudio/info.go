package main

import (
	"fmt"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [script]",
	Short: "Display general information about a drawing",
	Long:  "Replay a script and show element counts, bounds, filled area and line statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	session, replay := replayFile(filename)
	result := analysis.AnalyzeSession(session.Elements())
	undo, redo := session.HistoryDepth()

	fmt.Println("Drawing Information")
	fmt.Println("===================")
	fmt.Printf("Script: %s\n", filename)
	fmt.Printf("Frames: %d\n", replay.Frames)
	fmt.Printf("Final mode: %s\n", replay.Frame.Mode)
	fmt.Printf("History: %d undo, %d redo\n\n", undo, redo)

	fmt.Println("Elements:")
	fmt.Printf("  Total: %d\n", result.ElementCount)
	for _, k := range element.Kinds {
		if n := result.KindCounts[k]; n > 0 {
			fmt.Printf("  %s: %d\n", k, n)
		}
	}
	fmt.Printf("  Filled Area: %s²\n\n", analysis.FormatMeasurement(result.FilledArea, ""))

	if result.ElementCount > 0 {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.Bounds.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.Bounds.Max))
		fmt.Printf("  Center: %s\n", analysis.FormatPoint(result.Bounds.Center()))
		fmt.Printf("  Width: %s\n", analysis.FormatMeasurement(result.Dimensions.X, ""))
		fmt.Printf("  Height: %s\n\n", analysis.FormatMeasurement(result.Dimensions.Y, ""))
	}

	fmt.Println("Lines:")
	fmt.Printf("  Count: %d (%d unique)\n", result.LineCount, result.UniqueLineCount)
	if result.LineCount > 0 {
		fmt.Printf("  Minimum: %s\n", analysis.FormatMeasurement(result.MinLineLength, ""))
		fmt.Printf("  Maximum: %s\n", analysis.FormatMeasurement(result.MaxLineLength, ""))
		fmt.Printf("  Average: %s\n", analysis.FormatMeasurement(result.AvgLineLength, ""))
		fmt.Printf("  Total: %s\n", analysis.FormatMeasurement(result.TotalLineLength, ""))
	}
}
