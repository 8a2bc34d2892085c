package main

import (
	"fmt"

	"github.com/philipparndt/gostudio/pkg/analysis"
	"github.com/philipparndt/gostudio/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	point1X, point1Y float64
	point2X, point2Y float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [script]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two points on the canvas.
The nearest feature point of the drawing is reported for each point.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "x2", "y2")
}

func runMeasure(cmd *cobra.Command, args []string) {
	session, _ := replayFile(args[0])
	elements := session.Elements()

	p1 := geometry.NewPoint(point1X, point1Y)
	p2 := geometry.NewPoint(point2X, point2Y)

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")

	nearest1, dist1, ok1 := analysis.FindNearestFeature(elements, p1)
	nearest2, dist2, ok2 := analysis.FindNearestFeature(elements, p2)

	fmt.Printf("\nPoint 1: %s\n", analysis.FormatPoint(p1))
	if ok1 {
		fmt.Printf("  Nearest feature: %s (distance: %.2f)\n", analysis.FormatPoint(nearest1), dist1)
	}

	fmt.Printf("\nPoint 2: %s\n", analysis.FormatPoint(p2))
	if ok2 {
		fmt.Printf("  Nearest feature: %s (distance: %.2f)\n", analysis.FormatPoint(nearest2), dist2)
	}

	fmt.Printf("\nDirect distance: %s\n", analysis.FormatMeasurement(p1.Distance(p2), ""))

	if ok1 && ok2 {
		fmt.Printf("Distance between nearest features: %s\n", analysis.FormatMeasurement(nearest1.Distance(nearest2), ""))
	}
}
