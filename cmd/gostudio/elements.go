package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/philipparndt/gostudio/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	elemCount    int
	elemLargest  bool
	elemSmallest bool
)

type elementInfo struct {
	Index    int
	Kind     string
	Area     float64
	Features string
}

var elementsCmd = &cobra.Command{
	Use:   "elements [script]",
	Short: "List the elements of a drawing",
	Long:  "Display every element with its kind, enclosed area and feature points.",
	Args:  cobra.ExactArgs(1),
	Run:   runElements,
}

func init() {
	rootCmd.AddCommand(elementsCmd)

	elementsCmd.Flags().IntVarP(&elemCount, "count", "n", 10, "Number of elements to display")
	elementsCmd.Flags().BoolVarP(&elemLargest, "largest", "l", false, "Show largest elements by area")
	elementsCmd.Flags().BoolVarP(&elemSmallest, "smallest", "s", false, "Show smallest elements by area")
}

func runElements(cmd *cobra.Command, args []string) {
	session, _ := replayFile(args[0])

	elements := session.Elements()
	infos := make([]elementInfo, 0, len(elements))
	for i, e := range elements {
		features := make([]string, 0, 5)
		for _, p := range e.Shape.FeaturePoints() {
			features = append(features, analysis.FormatPoint(p))
		}
		infos = append(infos, elementInfo{
			Index:    i,
			Kind:     e.Kind().String(),
			Area:     analysis.ShapeArea(e.Shape),
			Features: strings.Join(features, ", "),
		})
	}

	var title string
	if elemLargest {
		sort.SliceStable(infos, func(i, j int) bool { return infos[i].Area > infos[j].Area })
		title = fmt.Sprintf("Top %d Largest Elements", min(elemCount, len(infos)))
	} else if elemSmallest {
		sort.SliceStable(infos, func(i, j int) bool { return infos[i].Area < infos[j].Area })
		title = fmt.Sprintf("Top %d Smallest Elements", min(elemCount, len(infos)))
	} else {
		title = fmt.Sprintf("First %d Elements", min(elemCount, len(infos)))
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total elements: %d\n\n", len(infos))

	for i := 0; i < elemCount && i < len(infos); i++ {
		info := infos[i]
		fmt.Printf("Element #%d (%s):\n", info.Index, info.Kind)
		fmt.Printf("  Area: %s²\n", analysis.FormatMeasurement(info.Area, ""))
		fmt.Printf("  Feature points: %s\n\n", info.Features)
	}
}
