// Package state holds process-wide UI toggles.
//
// A [State] is created once and passed explicitly to whatever reads or flips
// it (the watch TUI, the HTTP API). There is no package-level instance.
package state

import "sync/atomic"

// State is safe for concurrent use.
type State struct {
	inline atomic.Bool
}

// New returns a State whose inline annotations start enabled or disabled.
func New(inlineEnabled bool) *State {
	s := &State{}
	s.inline.Store(inlineEnabled)
	return s
}

// InlineEnabled reports whether inline annotations are shown.
func (s *State) InlineEnabled() bool {
	return s.inline.Load()
}

// ToggleInline flips the inline flag and returns the new value.
// Concurrent toggles each observe a distinct transition.
func (s *State) ToggleInline() bool {
	for {
		old := s.inline.Load()
		if s.inline.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetInline sets the inline flag.
func (s *State) SetInline(enabled bool) {
	s.inline.Store(enabled)
}
