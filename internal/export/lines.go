// Package export turns the element store into output: a Go source listing
// of line segments and a rendered PNG.
package export

import (
	"fmt"
	"io"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// UniqueLines returns the lines of the store in order, dropping any line
// that joins the same two points as an earlier one in either direction
func UniqueLines(elements []element.Element) []geometry.Line {
	var unique []geometry.Line
	for _, e := range elements {
		l, ok := e.Shape.(geometry.Line)
		if !ok {
			continue
		}
		duplicate := false
		for _, u := range unique {
			if u.SameSegment(l) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, l)
		}
	}
	return unique
}

// WriteLines writes the lines as a Go slice literal of segments
func WriteLines(w io.Writer, lines []geometry.Line) error {
	if _, err := fmt.Fprintf(w, "\n// Exported Line Segments\nvar Polylines = [][2][2]float64{\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "\t{{%.1f, %.1f}, {%.1f, %.1f}},\n", l.A.X, l.A.Y, l.B.X, l.B.Y); err != nil {
			return fmt.Errorf("failed to write segment: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return fmt.Errorf("failed to write footer: %w", err)
	}
	return nil
}
