package paint

import (
	"fmt"
	"image"
	"io"
	"math"

	"SketchBoard/internal/state"

	"github.com/gogpu/gg"
)

// EraserSize is the side of the square window the eraser clears per move.
const EraserSize = 10

// Surface owns the pixel buffer and turns a stroke's pointer positions into
// pixel mutations.
type Surface struct {
	dc      *gg.Context
	tools   *state.ToolConfig
	session state.Session
}

// NewSurface creates a transparent surface. tools is read, never written.
func NewSurface(width, height int, tools *state.ToolConfig) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	return &Surface{dc: dc, tools: tools}
}

func (s *Surface) Width() int  { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

// Empty reports whether the surface has no pixels to draw on.
func (s *Surface) Empty() bool {
	return s.Width() == 0 || s.Height() == 0
}

// Buffer returns the live pixel buffer.
func (s *Surface) Buffer() *gg.Pixmap {
	return s.dc.ResizeTarget()
}

// Resize reallocates the buffer. Existing pixels are always discarded, even
// when the size does not change.
func (s *Surface) Resize(width, height int) error {
	s.session.End()
	if err := s.dc.Resize(width, height); err != nil {
		return err
	}
	s.dc.Clear()
	return nil
}

// Drawing reports whether a stroke is in progress.
func (s *Surface) Drawing() bool {
	_, ok := s.session.Active()
	return ok
}

// BeginStroke anchors a new stroke at p using the active tool. base is the
// snapshot taken before the stroke; shape tools restore it on every move.
func (s *Surface) BeginStroke(p state.Point, base *state.Snapshot) *state.Stroke {
	s.dc.ClearPath()
	return s.session.Begin(s.tools.Tool(), p, base)
}

// ContinueStroke renders the active stroke up to p. Without an active
// stroke it does nothing.
func (s *Surface) ContinueStroke(p state.Point) error {
	st, ok := s.session.Active()
	if !ok {
		return nil
	}
	defer func() { st.Last = p }()

	s.dc.SetColor(s.tools.Color())
	s.dc.SetLineWidth(float64(s.tools.Width()))

	switch st.Tool {
	case state.ToolBrush:
		s.dc.MoveTo(st.Last.X, st.Last.Y)
		s.dc.LineTo(p.X, p.Y)
		return s.dc.Stroke()
	case state.ToolEraser:
		s.erase(p)
		return nil
	case state.ToolRectangle, state.ToolCircle:
		return s.preview(st, p)
	}
	return nil
}

// EndStroke returns the surface to idle and hands back the finished stroke.
func (s *Surface) EndStroke() *state.Stroke {
	s.dc.ClearPath()
	return s.session.End()
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	s.dc.ClearPath()
	s.dc.Clear()
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() *image.RGBA {
	return s.Buffer().ToImage()
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return s.dc.EncodePNG(w)
}

func (s *Surface) preview(st *state.Stroke, p state.Point) error {
	if st.Base != nil {
		if err := st.Base.RestoreInto(s.Buffer()); err != nil {
			return err
		}
	}

	a := st.Anchor
	switch st.Tool {
	case state.ToolRectangle:
		s.dc.DrawRectangle(a.X, a.Y, p.X-a.X, p.Y-a.Y)
	case state.ToolCircle:
		r := math.Hypot(p.X-a.X, p.Y-a.Y)
		if r == 0 {
			return nil
		}
		s.dc.DrawCircle(a.X, a.Y, r)
	}
	return s.dc.Stroke()
}

// erase clears the EraserSize square centred on p.
func (s *Surface) erase(p state.Point) {
	pm := s.Buffer()
	w, h := pm.Width(), pm.Height()
	x0 := int(math.Floor(p.X - EraserSize/2))
	y0 := int(math.Floor(p.Y - EraserSize/2))
	x1, y1 := x0+EraserSize, y0+EraserSize
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, w), min(y1, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	data := pm.Data()
	for y := y0; y < y1; y++ {
		row := data[(y*w+x0)*4 : (y*w+x1)*4]
		clear(row)
	}
}
