package main

import (
	"fmt"

	"github.com/philipparndt/gostudio/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	linesCount     int
	linesLongest   bool
	linesShortest  bool
	linesMinLength float64
	linesMaxLength float64
)

var linesCmd = &cobra.Command{
	Use:   "lines [script]",
	Short: "List and measure line elements",
	Long:  "Find and measure lines, including longest, shortest, or lines within a specific length range.",
	Args:  cobra.ExactArgs(1),
	Run:   runLines,
}

func init() {
	rootCmd.AddCommand(linesCmd)

	linesCmd.Flags().IntVarP(&linesCount, "count", "n", 10, "Number of lines to display")
	linesCmd.Flags().BoolVarP(&linesLongest, "longest", "l", false, "Show longest lines")
	linesCmd.Flags().BoolVarP(&linesShortest, "shortest", "s", false, "Show shortest lines")
	linesCmd.Flags().Float64Var(&linesMinLength, "min", 0.0, "Minimum line length filter")
	linesCmd.Flags().Float64Var(&linesMaxLength, "max", 0.0, "Maximum line length filter")
}

func runLines(cmd *cobra.Command, args []string) {
	session, _ := replayFile(args[0])
	result := analysis.AnalyzeSession(session.Elements())

	var lines []analysis.LineInfo
	var title string

	if linesLongest {
		lines = analysis.FindLongestLines(result, linesCount)
		title = fmt.Sprintf("Top %d Longest Lines", len(lines))
	} else if linesShortest {
		lines = analysis.FindShortestLines(result, linesCount)
		title = fmt.Sprintf("Top %d Shortest Lines", len(lines))
	} else if linesMaxLength > 0 {
		lines = analysis.FindLinesByLength(result, linesMinLength, linesMaxLength)
		title = fmt.Sprintf("Lines between %.2f and %.2f px (found %d)", linesMinLength, linesMaxLength, len(lines))
		if len(lines) > linesCount {
			lines = lines[:linesCount]
		}
	} else {
		lines = result.AllLines
		title = fmt.Sprintf("All Lines (showing first %d of %d)", min(linesCount, len(lines)), len(lines))
		if len(lines) > linesCount {
			lines = lines[:linesCount]
		}
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total lines: %d\n", result.LineCount)
	fmt.Printf("Min line length: %.2f px\n", result.MinLineLength)
	fmt.Printf("Max line length: %.2f px\n", result.MaxLineLength)
	fmt.Printf("Avg line length: %.2f px\n\n", result.AvgLineLength)

	if len(lines) > 0 {
		fmt.Printf("%-8s %-22s %-22s %-12s\n", "Element", "Start", "End", "Length")
		fmt.Println("------------------------------------------------------------------")
		for _, line := range lines {
			fmt.Printf("%-8d %-22s %-22s %-12.2f\n",
				line.ElementID,
				analysis.FormatPoint(line.Start),
				analysis.FormatPoint(line.End),
				line.Length)
		}
	} else {
		fmt.Println("No lines found matching the criteria.")
	}
}
