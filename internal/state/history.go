package state

import (
	"errors"
	"log"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Policy selects how the two stacks interact.
type Policy struct {
	// RedoFromUndo makes Undo push the pre-undo pixels onto the redo stack
	// and Redo push the pre-redo pixels onto the undo stack.
	RedoFromUndo bool
	// KeepRedoOnStroke leaves the redo stack alone when a new stroke starts.
	KeepRedoOnStroke bool
	// MaxDepth caps the undo stack; 0 means unbounded.
	MaxDepth int
}

// DefaultPolicy is a conventional linear undo/redo.
func DefaultPolicy() Policy {
	return Policy{RedoFromUndo: true}
}

// LegacyPolicy reproduces the asymmetric behaviour of the original drawing
// page: undo never feeds redo, redo re-pushes the snapshot it applied and a
// new stroke does not clear redo.
func LegacyPolicy() Policy {
	return Policy{KeepRedoOnStroke: true}
}

// History holds the undo and redo stacks of buffer snapshots. The last
// element of each stack is the most recent. History is not safe for
// concurrent use; the board serialises access to it.
type History struct {
	undoStack []*Snapshot
	redoStack []*Snapshot
	policy    Policy
}

func NewHistory(policy Policy) *History {
	if policy.MaxDepth < 0 {
		policy.MaxDepth = 0
	}
	return &History{policy: policy}
}

func (h *History) Policy() Policy { return h.policy }

// RecordBeforeStroke pushes a snapshot of buf onto the undo stack and
// returns it. It must run before the stroke mutates buf.
func (h *History) RecordBeforeStroke(buf Buffer) *Snapshot {
	snap := Capture(buf)
	h.undoStack = append(h.undoStack, snap)

	if !h.policy.KeepRedoOnStroke {
		h.redoStack = nil
	}

	if h.policy.MaxDepth > 0 && len(h.undoStack) > h.policy.MaxDepth {
		excess := len(h.undoStack) - h.policy.MaxDepth
		h.undoStack = h.undoStack[excess:]
	}
	return snap
}

// Undo restores the most recent undo snapshot into buf and returns it.
// With an empty stack it returns ErrNothingToUndo and leaves buf alone.
func (h *History) Undo(buf Buffer) (*Snapshot, error) {
	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}
	snap := h.undoStack[len(h.undoStack)-1]
	if !snap.Fits(buf) {
		return nil, snap.RestoreInto(buf)
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	if h.policy.RedoFromUndo {
		h.redoStack = append(h.redoStack, Capture(buf))
	}
	if err := snap.RestoreInto(buf); err != nil {
		return nil, err
	}
	return snap, nil
}

// Redo restores the most recent redo snapshot into buf and returns it.
// With an empty stack it returns ErrNothingToRedo and leaves buf alone.
func (h *History) Redo(buf Buffer) (*Snapshot, error) {
	if len(h.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}
	snap := h.redoStack[len(h.redoStack)-1]
	if !snap.Fits(buf) {
		return nil, snap.RestoreInto(buf)
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	if h.policy.RedoFromUndo {
		h.undoStack = append(h.undoStack, Capture(buf))
	} else {
		h.undoStack = append(h.undoStack, snap)
	}
	if err := snap.RestoreInto(buf); err != nil {
		return nil, err
	}
	return snap, nil
}

// Clear empties both stacks.
func (h *History) Clear() {
	if len(h.undoStack) > 0 || len(h.redoStack) > 0 {
		log.Printf("[HISTORY] Dropping %d undo and %d redo snapshots", len(h.undoStack), len(h.redoStack))
	}
	h.undoStack = nil
	h.redoStack = nil
}

func (h *History) CanUndo() bool  { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool  { return len(h.redoStack) > 0 }
func (h *History) UndoCount() int { return len(h.undoStack) }
func (h *History) RedoCount() int { return len(h.redoStack) }

// PeekUndo returns the snapshot the next Undo would apply.
func (h *History) PeekUndo() (*Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}
