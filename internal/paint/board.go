package paint

import (
	"errors"
	"image"
	"image/color"
	"io"
	"log"
	"sync"

	"SketchBoard/internal/export"
	"SketchBoard/internal/state"
)

// Board wires pointer events, the tool configuration, the drawing surface
// and its history together. All mutation goes through the board lock so the
// renderer can read pixels from another goroutine.
type Board struct {
	mu      sync.RWMutex
	tools   state.ToolConfig
	surface *Surface
	history *state.History

	// OnChange runs after any mutation of pixels or history.
	OnChange func()
}

func NewBoard(width, height int, policy state.Policy) *Board {
	b := &Board{
		tools:   state.DefaultToolConfig(),
		history: state.NewHistory(policy),
	}
	b.surface = NewSurface(width, height, &b.tools)
	log.Printf("[BOARD] Created %dx%d board", b.surface.Width(), b.surface.Height())
	return b
}

func (b *Board) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// PointerDown snapshots the buffer and starts a stroke at p.
func (b *Board) PointerDown(p state.Point) {
	b.mu.Lock()
	if b.surface.Empty() {
		b.mu.Unlock()
		return
	}
	if st := b.surface.EndStroke(); st != nil {
		log.Printf("[BOARD] Stroke %s ended by a new pointer-down", st.ID)
	}
	snap := b.history.RecordBeforeStroke(b.surface.Buffer())
	st := b.surface.BeginStroke(p, snap)
	b.mu.Unlock()

	log.Printf("[BOARD] Stroke %s started with %s at (%.0f, %.0f)", st.ID, st.Tool, p.X, p.Y)
	b.changed()
}

// PointerMove extends the active stroke to p. Without one it does nothing.
func (b *Board) PointerMove(p state.Point) {
	b.mu.Lock()
	if !b.surface.Drawing() {
		b.mu.Unlock()
		return
	}
	err := b.surface.ContinueStroke(p)
	b.mu.Unlock()

	if err != nil {
		log.Printf("[BOARD] Rendering stroke failed: %v", err)
	}
	b.changed()
}

// PointerUp finishes the active stroke. No snapshot is taken.
func (b *Board) PointerUp() {
	b.mu.Lock()
	st := b.surface.EndStroke()
	b.mu.Unlock()

	if st != nil {
		log.Printf("[BOARD] Stroke %s finished", st.ID)
	}
}

// PointerLeave behaves exactly like PointerUp: the last preview persists.
func (b *Board) PointerLeave() {
	b.PointerUp()
}

// Undo restores the pixels from before the most recent stroke. It reports
// whether anything changed.
func (b *Board) Undo() bool {
	b.mu.Lock()
	b.surface.EndStroke()
	_, err := b.history.Undo(b.surface.Buffer())
	b.mu.Unlock()

	return b.finishHistoryOp("undo", err, state.ErrNothingToUndo)
}

// Redo reapplies the most recently undone state. It reports whether
// anything changed.
func (b *Board) Redo() bool {
	b.mu.Lock()
	b.surface.EndStroke()
	_, err := b.history.Redo(b.surface.Buffer())
	b.mu.Unlock()

	return b.finishHistoryOp("redo", err, state.ErrNothingToRedo)
}

func (b *Board) finishHistoryOp(name string, err, empty error) bool {
	if err != nil {
		if !errors.Is(err, empty) {
			log.Printf("[BOARD] %s failed: %v", name, err)
		}
		return false
	}
	b.changed()
	return true
}

// Clear wipes the pixels and both history stacks.
func (b *Board) Clear() {
	b.mu.Lock()
	if b.surface.Empty() {
		b.mu.Unlock()
		return
	}
	b.surface.EndStroke()
	b.surface.Clear()
	b.history.Clear()
	b.mu.Unlock()

	log.Println("[BOARD] Cleared")
	b.changed()
}

// Resize reallocates the buffer. Pixels and history are discarded.
func (b *Board) Resize(width, height int) error {
	b.mu.Lock()
	err := b.surface.Resize(width, height)
	if err == nil {
		b.history.Clear()
	}
	b.mu.Unlock()

	if err != nil {
		return err
	}
	b.changed()
	return nil
}

func (b *Board) SetColor(c color.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tools.SetColor(c)
}

func (b *Board) SetColorHex(s string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tools.SetColorHex(s)
}

func (b *Board) SetStrokeWidth(w int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tools.SetWidth(w)
}

func (b *Board) SetTool(t state.Tool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tools.SetTool(t)
}

// Tools returns a copy of the current tool configuration.
func (b *Board) Tools() state.ToolConfig {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tools
}

func (b *Board) Size() (width, height int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.surface.Width(), b.surface.Height()
}

func (b *Board) Drawing() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.surface.Drawing()
}

func (b *Board) CanUndo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanUndo()
}

func (b *Board) CanRedo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanRedo()
}

func (b *Board) UndoCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.UndoCount()
}

func (b *Board) RedoCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.RedoCount()
}

// Image returns a copy of the current pixels.
func (b *Board) Image() *image.RGBA {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.surface.Image()
}

// ExportPNG writes the canvas as PNG. It is a pure read.
func (b *Board) ExportPNG(w io.Writer) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return export.WritePNG(w, b.surface)
}

// ExportPDF writes a one-page PDF holding the canvas raster.
func (b *Board) ExportPDF(w io.Writer) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return export.WritePDF(w, b.surface)
}
