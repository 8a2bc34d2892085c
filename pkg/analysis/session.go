package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/internal/export"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// LineInfo describes one line element
type LineInfo struct {
	Start     geometry.Point
	End       geometry.Point
	Length    float64
	ElementID int
}

// SessionResult summarizes the elements of a session
type SessionResult struct {
	Bounds          geometry.Bounds
	Dimensions      geometry.Point
	ElementCount    int
	KindCounts      map[element.Kind]int
	FilledArea      float64 // sum of the areas of closed shapes, overlaps counted twice
	LineCount       int
	UniqueLineCount int
	MinLineLength   float64
	MaxLineLength   float64
	AvgLineLength   float64
	TotalLineLength float64
	AllLines        []LineInfo
}

// AnalyzeSession measures a list of elements
func AnalyzeSession(elements []element.Element) *SessionResult {
	result := &SessionResult{
		Bounds:       geometry.NewBounds(),
		ElementCount: len(elements),
		KindCounts:   make(map[element.Kind]int),
		AllLines:     make([]LineInfo, 0),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0

	for i, e := range elements {
		result.KindCounts[e.Kind()]++

		b := e.Shape.Bounds()
		if !b.Empty() {
			result.Bounds.Extend(b.Min)
			result.Bounds.Extend(b.Max)
		}

		switch s := e.Shape.(type) {
		case geometry.Line:
			length := s.Length()
			result.AllLines = append(result.AllLines, LineInfo{
				Start:     s.A,
				End:       s.B,
				Length:    length,
				ElementID: i,
			})
			result.TotalLineLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		default:
			result.FilledArea += ShapeArea(s)
		}
	}

	result.Dimensions = result.Bounds.Size()
	result.LineCount = len(result.AllLines)
	result.UniqueLineCount = len(export.UniqueLines(elements))
	if result.LineCount > 0 {
		result.MinLineLength = minLength
		result.MaxLineLength = maxLength
		result.AvgLineLength = result.TotalLineLength / float64(result.LineCount)
	}

	return result
}

// ShapeArea returns the enclosed area of a shape; lines have none
func ShapeArea(shape geometry.Shape) float64 {
	switch s := shape.(type) {
	case geometry.Circle:
		return math.Pi * s.Radius * s.Radius
	case geometry.Ellipse:
		return math.Pi * s.Width * s.Height
	case geometry.Rectangle:
		return s.Width * s.Height
	case geometry.Triangle:
		return s.Area()
	}
	return 0
}

// FindLinesByLength finds all lines within a length range
func FindLinesByLength(result *SessionResult, minLength, maxLength float64) []LineInfo {
	var lines []LineInfo
	for _, line := range result.AllLines {
		if line.Length >= minLength && line.Length <= maxLength {
			lines = append(lines, line)
		}
	}
	return lines
}

// FindLongestLines returns the N longest lines
func FindLongestLines(result *SessionResult, count int) []LineInfo {
	return sortedLines(result, count, func(a, b LineInfo) bool { return a.Length > b.Length })
}

// FindShortestLines returns the N shortest lines
func FindShortestLines(result *SessionResult, count int) []LineInfo {
	return sortedLines(result, count, func(a, b LineInfo) bool { return a.Length < b.Length })
}

func sortedLines(result *SessionResult, count int, less func(a, b LineInfo) bool) []LineInfo {
	lines := make([]LineInfo, len(result.AllLines))
	copy(lines, result.AllLines)

	sort.SliceStable(lines, func(i, j int) bool {
		return less(lines[i], lines[j])
	})

	if count > len(lines) {
		count = len(lines)
	}
	if count < 0 {
		count = 0
	}

	return lines[:count]
}

// FindNearestFeature finds the feature point of any element nearest to p
func FindNearestFeature(elements []element.Element, p geometry.Point) (geometry.Point, float64, bool) {
	var nearest geometry.Point
	minDistance := math.MaxFloat64
	found := false

	for _, e := range elements {
		for _, f := range e.Shape.FeaturePoints() {
			if d := p.Distance(f); d < minDistance {
				minDistance = d
				nearest = f
				found = true
			}
		}
	}

	return nearest, minDistance, found
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "px"
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatPoint formats a 2D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
