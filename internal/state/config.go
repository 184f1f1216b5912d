package state

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinStrokeWidth     = 1
	MaxStrokeWidth     = 20
	DefaultStrokeWidth = 3
	DefaultColorHex    = "#000000"
)

// ToolConfig is what the control panel writes and the surface reads while
// rendering a stroke.
type ToolConfig struct {
	color color.NRGBA
	width int
	tool  Tool
}

func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		color: color.NRGBA{A: 255},
		width: DefaultStrokeWidth,
		tool:  ToolBrush,
	}
}

func (c ToolConfig) Color() color.NRGBA { return c.color }
func (c ToolConfig) Width() int         { return c.width }
func (c ToolConfig) Tool() Tool         { return c.tool }

// ColorHex returns the stroke colour as #rrggbb.
func (c ToolConfig) ColorHex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.color.R, c.color.G, c.color.B)
}

// SetColor stores col as an opaque colour. A nil colour is ignored.
func (c *ToolConfig) SetColor(col color.Color) {
	if col == nil {
		return
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	n.A = 255
	c.color = n
}

// SetColorHex parses s and stores it. On error the colour is left unchanged.
func (c *ToolConfig) SetColorHex(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.color = col
	return nil
}

// SetWidth stores w clamped to [MinStrokeWidth, MaxStrokeWidth].
func (c *ToolConfig) SetWidth(w int) {
	c.width = ClampWidth(w)
}

func (c *ToolConfig) SetTool(t Tool) {
	c.tool = t
}

// ClampWidth bounds w to the slider range.
func ClampWidth(w int) int {
	if w < MinStrokeWidth {
		return MinStrokeWidth
	}
	if w > MaxStrokeWidth {
		return MaxStrokeWidth
	}
	return w
}

// ParseColor accepts #rgb and #rrggbb.
func ParseColor(s string) (color.NRGBA, error) {
	if len(s) != 4 && len(s) != 7 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
