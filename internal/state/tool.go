package state

import "strings"

// Tool is the active drawing mode.
type Tool string

const (
	ToolBrush     Tool = "brush"
	ToolEraser    Tool = "eraser"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
)

// Tools lists the selectable tools in toolbar order.
var Tools = []Tool{ToolBrush, ToolEraser, ToolRectangle, ToolCircle}

// ParseTool normalises a tool name. Unknown names are kept as-is so the
// surface treats them as a no-op tool.
func ParseTool(name string) Tool {
	return Tool(strings.ToLower(strings.TrimSpace(name)))
}

// Valid reports whether t is one of the known tools.
func (t Tool) Valid() bool {
	switch t {
	case ToolBrush, ToolEraser, ToolRectangle, ToolCircle:
		return true
	}
	return false
}

// IsShape reports whether t previews by restoring the stroke's base snapshot.
func (t Tool) IsShape() bool {
	return t == ToolRectangle || t == ToolCircle
}

func (t Tool) String() string { return string(t) }
