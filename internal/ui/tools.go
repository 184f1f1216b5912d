package ui

import (
	"fmt"
	"image/color"
	"strings"

	"SketchBoard/internal/export"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

func toolLabel(t state.Tool) string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Toolbar is the control panel: colour, width, tool, history and export.
type Toolbar struct {
	board *BoardWidget
	win   fyne.Window

	current   *canvas.Rectangle
	width     *widget.Slider
	sizeLabel *widget.Label
	tools   *widget.RadioGroup
	undo    *widget.Button
	redo    *widget.Button
}

// NewToolbar builds the control panel and hooks it to the board's change
// notifications.
func NewToolbar(board *BoardWidget, win fyne.Window) *Toolbar {
	t := &Toolbar{board: board, win: win}
	cfg := board.Board.Tools()

	// --- Color ---
	t.current = canvas.NewRectangle(cfg.Color())
	t.current.SetMinSize(fyne.NewSize(28, 28))
	t.current.StrokeColor = color.Gray{Y: 90}
	t.current.StrokeWidth = 2

	// --- Stroke Width Slider ---
	t.sizeLabel = widget.NewLabel(fmt.Sprintf("%d", cfg.Width()))
	t.width = widget.NewSlider(state.MinStrokeWidth, state.MaxStrokeWidth)
	t.width.Step = 1
	t.width.SetValue(float64(cfg.Width()))
	t.width.OnChanged = func(val float64) {
		board.Board.SetStrokeWidth(int(val))
		t.sizeLabel.SetText(fmt.Sprintf("%d", board.Board.Tools().Width()))
	}

	// --- Tool Selector ---
	labels := make([]string, 0, len(state.Tools))
	for _, tool := range state.Tools {
		labels = append(labels, toolLabel(tool))
	}
	t.tools = widget.NewRadioGroup(labels, func(s string) {
		board.Board.SetTool(state.ParseTool(s))
	})
	t.tools.Horizontal = true
	t.tools.Required = true
	t.tools.SetSelected(toolLabel(cfg.Tool()))

	t.undo = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), t.Undo)
	t.redo = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), t.Redo)

	board.Board.OnChange = t.syncHistory
	t.syncHistory()
	return t
}

func (t *Toolbar) setColor(c color.Color) {
	t.board.Board.SetColor(c)
	t.current.FillColor = t.board.Board.Tools().Color()
	t.current.Refresh()
}

func (t *Toolbar) pickColor() {
	picker := dialog.NewColorPicker("Stroke colour", "Pick any colour", func(c color.Color) {
		t.setColor(c)
	}, t.win)
	picker.Advanced = true
	picker.Show()
}

// Undo and Redo are shared by the buttons and the keyboard shortcuts.
func (t *Toolbar) Undo() {
	if t.board.Board.Undo() {
		t.board.Refresh()
	}
}

func (t *Toolbar) Redo() {
	if t.board.Board.Redo() {
		t.board.Refresh()
	}
}

func (t *Toolbar) Clear() {
	t.board.Board.Clear()
	t.board.Refresh()
	t.board.SetStatus("Cleared")
}

func (t *Toolbar) syncHistory() {
	setEnabled(t.undo, t.board.Board.CanUndo())
	setEnabled(t.redo, t.board.Board.CanRedo())
}

func setEnabled(b *widget.Button, on bool) {
	if on == !b.Disabled() {
		return
	}
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

// Object lays the toolbar out as a single row.
func (t *Toolbar) Object() fyne.CanvasObject {
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, t.setColor))
	}
	pick := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.pickColor)

	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.width)

	save := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		showSaveDialog(t.board, t.win, export.FileName, t.board.Board.ExportPNG)
	})
	pdf := widget.NewButtonWithIcon("PDF", theme.DocumentIcon(), func() {
		showSaveDialog(t.board, t.win, export.PDFFileName, t.board.Board.ExportPDF)
	})
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), t.Clear)

	return container.NewHBox(
		widget.NewLabel("Color:"),
		t.current,
		swatches,
		pick,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		t.sizeLabel,
		widget.NewSeparator(),
		t.tools,
		widget.NewSeparator(),
		t.undo,
		t.redo,
		clearBtn,
		layout.NewSpacer(),
		save,
		pdf,
	)
}
