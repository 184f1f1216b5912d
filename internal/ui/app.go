package ui

import (
	"SketchBoard/internal/paint"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	AppID        = "io.sketchboard.app"
	WindowWidth  = 1024
	WindowHeight = 768

	// The canvas takes this share of the window, fixed at creation.
	CanvasWidthRatio  = 0.8
	CanvasHeightRatio = 0.6
)

// CanvasSize derives the canvas size from the viewport, rounded down to
// whole pixels.
func CanvasSize(viewport fyne.Size) fyne.Size {
	return fyne.NewSize(
		float32(int(viewport.Width*CanvasWidthRatio)),
		float32(int(viewport.Height*CanvasHeightRatio)),
	)
}

func RunApp(policy state.Policy) {
	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow("Sketch Board")
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	size := CanvasSize(fyne.NewSize(WindowWidth, WindowHeight))
	board := NewBoardWidget(paint.NewBoard(int(size.Width), int(size.Height), policy), size)
	toolbar := NewToolbar(board, myWindow)

	undoKey := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redoKey := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
	myWindow.Canvas().AddShortcut(undoKey, func(fyne.Shortcut) { toolbar.Undo() })
	myWindow.Canvas().AddShortcut(redoKey, func(fyne.Shortcut) { toolbar.Redo() })

	content := container.NewBorder(toolbar.Object(), board.statusBar, nil, nil, container.NewCenter(board))
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
