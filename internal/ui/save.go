package ui

import (
	"errors"
	"fmt"
	"io"
	"log"

	"SketchBoard/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// showSaveDialog asks for a destination and writes the canvas through
// write. An empty canvas never opens the dialog.
func showSaveDialog(b *BoardWidget, win fyne.Window, name string, write func(io.Writer) error) {
	if w, h := b.Board.Size(); w == 0 || h == 0 {
		b.SetStatus("Nothing to save")
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		b.SaveToFile(writer, write)
	}, win)
	d.SetFileName(name)
	d.Show()
}

// SaveToFile writes the canvas into writer and closes it. A failed write
// removes the partial file.
func (b *BoardWidget) SaveToFile(writer fyne.URIWriteCloser, write func(io.Writer) error) {
	uri := writer.URI()
	err := write(writer)
	if cerr := writer.Close(); cerr != nil {
		log.Printf("[UI] Error closing %s: %v", uri, cerr)
	}

	if err == nil {
		b.SetStatus(fmt.Sprintf("Saved %s", uri.Name()))
		log.Printf("[UI] Saved %s", uri)
		return
	}

	if derr := storage.Delete(uri); derr != nil {
		log.Printf("[UI] Could not remove partial file %s: %v", uri, derr)
	}
	if errors.Is(err, export.ErrEmptyCanvas) {
		b.SetStatus("Nothing to save")
		return
	}
	log.Printf("[UI] Saving %s failed: %v", uri, err)
	b.SetStatus("Error saving file")
}
