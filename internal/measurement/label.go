package measurement

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is a boxed dimension readout drawn next to an element
type Label struct {
	Text       string
	ScreenPos  rl.Vector2
	BaseColor  rl.Color
	HoverColor rl.Color
	IsSelected bool
	IsHovered  bool
}

// Draw renders the label centered above ScreenPos and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	color := l.BaseColor
	borderWidth := float32(1)
	if l.IsSelected {
		color = rl.Yellow
		borderWidth = 2
	} else if l.IsHovered {
		color = l.HoverColor
		borderWidth = 1.5
	}

	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)

	rect := rl.Rectangle{
		X:      l.ScreenPos.X - textSize.X/2 - padding,
		Y:      l.ScreenPos.Y - textSize.Y - 2*padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, borderWidth, color)

	textPos := rl.Vector2{
		X: rect.X + padding,
		Y: rect.Y + padding,
	}
	rl.DrawTextEx(font, l.Text, textPos, fontSize, 1, color)

	return rect
}
