package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gostudio/internal/config"
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/internal/export"
	"github.com/philipparndt/gostudio/pkg/geometry"
	"github.com/philipparndt/gostudio/pkg/viewer"
	"github.com/philipparndt/gostudio/version"
)

type App struct {
	window fyne.Window
	canvas *viewer.Canvas
	status *widget.Label
	info   *widget.Label
	draw   *widget.Check
}

func main() {
	settings := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		settings = loaded
	}

	a := app.New()
	w := a.NewWindow(fmt.Sprintf("%s %s", settings.Window.Title, version.GetVersion()))

	appInstance := &App{window: w}
	appInstance.setupMainUI(editor.NewSession(settings.EditorSettings()))

	w.Resize(fyne.NewSize(float32(settings.Window.Width), float32(settings.Window.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI(session *editor.Session) {
	a.canvas = viewer.NewCanvas(session)
	a.status = widget.NewLabel("")
	a.info = widget.NewLabel("")
	a.info.Wrapping = fyne.TextWrapWord

	a.canvas.SetOnChange(a.updateStatus)
	a.canvas.SetOnExport(a.showExport)

	// Selecting the current tool again would toggle draw mode, so the
	// initial selection is made before the callback is attached
	toolSelect := widget.NewSelect(kindNames(), nil)
	toolSelect.SetSelected(session.Tool().String())
	toolSelect.OnChanged = func(name string) {
		kind, ok := element.ParseKind(name)
		if !ok {
			return
		}
		a.canvas.Apply(editor.Input{SelectTool: true, Tool: kind})
	}

	a.draw = widget.NewCheck("Draw", func(checked bool) {
		if checked != a.canvas.Frame().DrawActive {
			a.canvas.Apply(editor.Input{SetDraw: true, Draw: checked})
		}
	})

	thickness := widget.NewSlider(1, 20)
	thickness.SetValue(session.Thickness())
	thickness.OnChanged = func(v float64) {
		a.canvas.Apply(editor.Input{Thickness: v})
	}

	button := func(label string, in editor.Input) *widget.Button {
		return widget.NewButton(label, func() { a.canvas.Apply(in) })
	}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Enable Draw and drag to create shapes\n" +
			"• Drag an endpoint to move it and every point joined to it\n" +
			"• Drag a circle to move it while Draw is off\n" +
			"• Export prints unique line segments",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Tool:"),
		toolSelect,
		a.draw,
		widget.NewLabel("Line thickness:"),
		thickness,
		widget.NewSeparator(),
		container.NewGridWithColumns(2,
			button("Undo", editor.Input{Undo: true}),
			button("Redo", editor.Input{Redo: true}),
			button("Snap", editor.Input{ToggleSnap: true}),
			button("Grid", editor.Input{CycleGrid: true}),
			button("Points", editor.Input{TogglePoints: true}),
			button("Clear", editor.Input{Clear: true}),
		),
		button("Export", editor.Input{Export: true}),
		widget.NewSeparator(),
		a.status,
		widget.NewSeparator(),
		a.info,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.canvas,   // center
	)
	a.window.SetContent(content)
	a.updateStatus(a.canvas.Frame())
}

func kindNames() []string {
	names := make([]string, 0, len(element.Kinds))
	for _, k := range element.Kinds {
		names = append(names, k.String())
	}
	return names
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (a *App) updateStatus(f editor.Frame) {
	if a.draw.Checked != f.DrawActive {
		a.draw.SetChecked(f.DrawActive)
	}

	a.status.SetText(fmt.Sprintf(
		"Mode: %s\nTool: %s\nDraw: %s\nSnap guides: %s\nGrid: %s\nPoints: %s\nUndo: %s  Redo: %s",
		f.Mode, f.Tool, onOff(f.DrawActive), onOff(f.SnapEnabled),
		gridLabel(f.GridLevel), onOff(f.ShowPoints), onOff(f.CanUndo), onOff(f.CanRedo),
	))

	text := fmt.Sprintf("Elements: %d\nPointer: %.0f, %.0f", len(f.Elements), f.Pointer.X, f.Pointer.Y)
	if len(f.Advice.Highlights) > 0 {
		text += fmt.Sprintf("\nNear element %d", f.Advice.Highlights[0].Element)
	}
	a.info.SetText(text)
}

func gridLabel(level int) string {
	spacing := editor.GridSpacing(level)
	if spacing == 0 {
		return "off"
	}
	return fmt.Sprintf("%.0f px", spacing)
}

func (a *App) showExport(lines []geometry.Line) {
	if err := export.WriteLines(os.Stdout, lines); err != nil {
		dialog.ShowError(fmt.Errorf("failed to export: %w", err), a.window)
		return
	}
	dialog.ShowInformation("Export", fmt.Sprintf("Exported %d line segments to stdout", len(lines)), a.window)
}
