package ui

import (
	"image"
	"image/color"

	"SketchBoard/internal/paint"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the on-screen canvas. It turns fyne pointer events into
// board operations and shows the board's pixels.
type BoardWidget struct {
	widget.BaseWidget
	Board     *paint.Board
	size      fyne.Size
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget shows board at a fixed on-screen size.
func NewBoardWidget(board *paint.Board, size fyne.Size) *BoardWidget {
	b := &BoardWidget{
		Board:     board,
		size:      size,
		statusBar: widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

// toBuffer maps a widget position to buffer pixels. The buffer may be
// larger than the widget when the output scale is above 1.
func (b *BoardWidget) toBuffer(pos fyne.Position) state.Point {
	w, h := b.Board.Size()
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return state.Point{X: float64(pos.X), Y: float64(pos.Y)}
	}
	return state.Point{
		X: float64(pos.X) * float64(w) / float64(size.Width),
		Y: float64(pos.Y) * float64(h) / float64(size.Height),
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.Board.PointerDown(b.toBuffer(e.Position))
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.Board.PointerUp()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.Board.Drawing() {
		return
	}
	b.Board.PointerMove(b.toBuffer(e.Position))
	b.Refresh()
}

func (b *BoardWidget) DragEnd() {
	b.Board.PointerUp()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if !b.Board.Drawing() {
		return
	}
	b.Board.PointerMove(b.toBuffer(e.Position))
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseOut() {
	b.Board.PointerLeave()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		return b.Board.Image()
	})
	r.raster.ScaleMode = canvas.ImageScalePixels
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	raster     *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.size
}

func (r *boardWidgetRenderer) Destroy() {}
