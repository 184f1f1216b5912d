package ui

import (
	"bytes"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"SketchBoard/internal/paint"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestBoard(t *testing.T, bufW, bufH int, size fyne.Size) *BoardWidget {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := NewBoardWidget(paint.NewBoard(bufW, bufH, state.DefaultPolicy()), size)
	w.Resize(size)
	return w
}

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func dragTo(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestCanvasSize(t *testing.T) {
	got := CanvasSize(fyne.NewSize(WindowWidth, WindowHeight))
	assert.Equal(t, fyne.NewSize(819, 460), got)
}

func TestBoardWidgetStroke(t *testing.T) {
	w := newTestBoard(t, 100, 100, fyne.NewSize(100, 100))
	w.Board.SetTool(state.ToolRectangle)

	w.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	assert.True(t, w.Board.Drawing())
	w.Dragged(dragTo(60, 50))
	w.MouseUp(mouse(60, 50, desktop.MouseButtonPrimary))

	assert.False(t, w.Board.Drawing())
	assert.Equal(t, 1, w.Board.UndoCount())
	assert.NotZero(t, w.Board.Image().RGBAAt(30, 10).A)
}

func TestBoardWidgetIgnoresSecondaryButton(t *testing.T) {
	w := newTestBoard(t, 50, 50, fyne.NewSize(50, 50))

	w.MouseDown(mouse(10, 10, desktop.MouseButtonSecondary))
	w.Dragged(dragTo(40, 40))

	assert.False(t, w.Board.Drawing())
	assert.Zero(t, w.Board.UndoCount())
}

func TestBoardWidgetScalesToBuffer(t *testing.T) {
	w := newTestBoard(t, 200, 100, fyne.NewSize(100, 50))
	assert.Equal(t, state.Point{X: 20, Y: 40}, w.toBuffer(fyne.NewPos(10, 20)))
}

func TestMouseOutEndsStroke(t *testing.T) {
	w := newTestBoard(t, 80, 80, fyne.NewSize(80, 80))
	w.Board.SetTool(state.ToolCircle)

	w.MouseDown(mouse(40, 40, desktop.MouseButtonPrimary))
	w.Dragged(dragTo(60, 40))
	w.MouseOut()

	assert.False(t, w.Board.Drawing())
	assert.NotZero(t, w.Board.Image().RGBAAt(60, 40).A)

	// Hover after leaving draws nothing further.
	before := w.Board.Image()
	w.MouseMoved(mouse(10, 10, desktop.MouseButtonPrimary))
	assert.Equal(t, before.Pix, w.Board.Image().Pix)
}

func TestToolbarWiring(t *testing.T) {
	w := newTestBoard(t, 60, 60, fyne.NewSize(60, 60))
	tb := NewToolbar(w, test.NewWindow(nil))
	require.NotNil(t, tb.Object())

	assert.True(t, tb.undo.Disabled())
	assert.True(t, tb.redo.Disabled())

	tb.tools.SetSelected("Circle")
	assert.Equal(t, state.ToolCircle, w.Board.Tools().Tool())

	tb.width.SetValue(7)
	assert.Equal(t, 7, w.Board.Tools().Width())

	tb.tools.SetSelected("Brush")
	w.MouseDown(mouse(5, 30, desktop.MouseButtonPrimary))
	w.Dragged(dragTo(55, 30))
	w.MouseUp(mouse(55, 30, desktop.MouseButtonPrimary))
	assert.False(t, tb.undo.Disabled())

	tb.Undo()
	assert.True(t, tb.undo.Disabled())
	assert.False(t, tb.redo.Disabled())

	tb.Redo()
	assert.False(t, tb.undo.Disabled())
	assert.True(t, tb.redo.Disabled())

	tb.Clear()
	assert.True(t, tb.undo.Disabled())
	assert.True(t, tb.redo.Disabled())
}

type memWriter struct {
	bytes.Buffer
	uri    fyne.URI
	closed bool
}

func (m *memWriter) URI() fyne.URI { return m.uri }
func (m *memWriter) Close() error  { m.closed = true; return nil }

func TestSaveToFile(t *testing.T) {
	w := newTestBoard(t, 30, 20, fyne.NewSize(30, 20))
	out := &memWriter{uri: storage.NewFileURI(filepath.Join(t.TempDir(), "drawing.png"))}

	w.SaveToFile(out, w.Board.ExportPNG)

	assert.True(t, out.closed)
	img, err := png.Decode(&out.Buffer)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
}
