package ui

// AppMode is what the gallery is currently showing. It is derived from the
// lightbox state and used to scope keybindings.
type AppMode int

const (
	ModeGrid AppMode = iota
	ModeLightbox
)

func (m AppMode) String() string {
	switch m {
	case ModeGrid:
		return "Grid"
	case ModeLightbox:
		return "Lightbox"
	default:
		return "Unknown"
	}
}
