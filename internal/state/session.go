package state

import (
	"time"

	"github.com/google/uuid"
)

// Stroke is the state of one pointer-down..pointer-up sequence.
type Stroke struct {
	ID      string
	Tool    Tool
	Anchor  Point
	Last    Point
	Base    *Snapshot // pixels as they were before the stroke began
	Started time.Time
}

// Session tracks the stroke in progress. The zero value is idle; a session
// is either idle or holds exactly one active stroke with its anchor.
type Session struct {
	active *Stroke
}

// Begin starts a stroke at anchor, replacing any stroke still active.
func (s *Session) Begin(tool Tool, anchor Point, base *Snapshot) *Stroke {
	s.active = &Stroke{
		ID:      uuid.NewString(),
		Tool:    tool,
		Anchor:  anchor,
		Last:    anchor,
		Base:    base,
		Started: time.Now(),
	}
	return s.active
}

// Active returns the stroke in progress.
func (s *Session) Active() (*Stroke, bool) {
	return s.active, s.active != nil
}

// End returns the session to idle and hands back the stroke that ended,
// or nil when nothing was active.
func (s *Session) End() *Stroke {
	st := s.active
	s.active = nil
	return st
}
