package state

import (
	"errors"
	"fmt"
	"time"
)

// Point is a position in buffer pixels, top-left origin.
type Point struct{ X, Y float64 }

// Buffer is a mutable RGBA pixel grid, 4 bytes per pixel.
// *gg.Pixmap satisfies it.
type Buffer interface {
	Width() int
	Height() int
	Data() []uint8
}

var ErrSizeMismatch = errors.New("snapshot size does not match buffer")

// Snapshot is an immutable copy of a Buffer at one instant.
type Snapshot struct {
	width  int
	height int
	pix    []uint8
	Taken  time.Time
}

// Capture copies the current pixels of buf. The snapshot never aliases buf.
func Capture(buf Buffer) *Snapshot {
	data := buf.Data()
	pix := make([]uint8, len(data))
	copy(pix, data)
	return &Snapshot{
		width:  buf.Width(),
		height: buf.Height(),
		pix:    pix,
		Taken:  time.Now(),
	}
}

func (s *Snapshot) Width() int  { return s.width }
func (s *Snapshot) Height() int { return s.height }

// Fits reports whether the snapshot can be written into buf.
func (s *Snapshot) Fits(buf Buffer) bool {
	return s.width == buf.Width() && s.height == buf.Height() && len(s.pix) == len(buf.Data())
}

// RestoreInto overwrites every pixel of buf with the snapshot.
func (s *Snapshot) RestoreInto(buf Buffer) error {
	if !s.Fits(buf) {
		return fmt.Errorf("%w: snapshot %dx%d, buffer %dx%d",
			ErrSizeMismatch, s.width, s.height, buf.Width(), buf.Height())
	}
	copy(buf.Data(), s.pix)
	return nil
}

// PixelAt returns the RGBA bytes stored for (x, y).
func (s *Snapshot) PixelAt(x, y int) (r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0, 0, 0, 0
	}
	i := (y*s.width + x) * 4
	return s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3]
}
