package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultToolConfig(t *testing.T) {
	c := DefaultToolConfig()
	assert.Equal(t, ToolBrush, c.Tool())
	assert.Equal(t, DefaultStrokeWidth, c.Width())
	assert.Equal(t, DefaultColorHex, c.ColorHex())
}

func TestSetWidthClamps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-4, 1}, {0, 1}, {1, 1}, {7, 7}, {20, 20}, {21, 20}, {500, 20},
	}
	for _, tt := range tests {
		c := DefaultToolConfig()
		c.SetWidth(tt.in)
		assert.Equal(t, tt.want, c.Width(), "SetWidth(%d)", tt.in)
	}
}

func TestSetColorHex(t *testing.T) {
	c := DefaultToolConfig()
	assert.NoError(t, c.SetColorHex("#ff8000"))
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, c.Color())

	assert.NoError(t, c.SetColorHex("#abc"))
	assert.Equal(t, "#aabbcc", c.ColorHex())

	for _, bad := range []string{"", "red", "#12", "#1234567", "#zzzzzz", "ff8000"} {
		assert.Error(t, c.SetColorHex(bad), bad)
		assert.Equal(t, "#aabbcc", c.ColorHex(), "colour changed by %q", bad)
	}
}

func TestSetColorIsOpaque(t *testing.T) {
	c := DefaultToolConfig()
	c.SetColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	assert.Equal(t, uint8(255), c.Color().A)

	c.SetColor(nil)
	assert.Equal(t, uint8(255), c.Color().A)
}

func TestParseTool(t *testing.T) {
	assert.Equal(t, ToolCircle, ParseTool(" Circle "))
	assert.True(t, ParseTool("eraser").Valid())
	assert.False(t, ParseTool("spray").Valid())
	assert.True(t, ToolRectangle.IsShape())
	assert.False(t, ToolBrush.IsShape())
}

func TestSessionLifecycle(t *testing.T) {
	var s Session
	_, ok := s.Active()
	assert.False(t, ok)
	assert.Nil(t, s.End())

	st := s.Begin(ToolRectangle, Point{X: 10, Y: 10}, nil)
	assert.NotEmpty(t, st.ID)
	got, ok := s.Active()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 10}, got.Anchor)

	assert.Same(t, st, s.End())
	_, ok = s.Active()
	assert.False(t, ok)
}
