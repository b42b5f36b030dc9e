package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal drawn in place of the gallery, such as the
// download-failed alert. While one is showing the shell routes every key to
// it and drops mouse events, so the lightbox underneath cannot change.
type Overlay struct {
	View    View
	Dismiss string // key the shell handles itself to pop the overlay, e.g. "esc"
}

// IsDismissKey reports whether key closes the overlay without consulting it.
func (o *Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack holds the modals above the gallery. Only the top one is drawn
// and receives input; alerts raised while another is open queue beneath it
// and show once the newer one is acknowledged.
type OverlayStack struct {
	items []Overlay
}

// Push shows o above everything else.
func (s *OverlayStack) Push(o Overlay) {
	s.items = append(s.items, o)
}

// Pop removes the top overlay, revealing the next one or the gallery.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return top, ok
}

// Peek returns the overlay currently on screen.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.items) == 0 {
		return Overlay{}, false
	}
	return s.items[len(s.items)-1], true
}

// Len is the number of pending overlays. Zero means the gallery has input.
func (s *OverlayStack) Len() int {
	return len(s.items)
}

// UpdateTop forwards msg to the top overlay and keeps the view it returns.
// It reports false when nothing is showing. The caller runs the command.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := &s.items[len(s.items)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}
