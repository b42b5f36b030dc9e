package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Lightbox control IDs, in tab order.
const (
	ControlPrev     = "prev"
	ControlNext     = "next"
	ControlZoomOut  = "zoom-out"
	ControlZoomIn   = "zoom-in"
	ControlDownload = "download"
	ControlClose    = "close"
)

// Download button labels.
const (
	DownloadLabel    = "Download image"
	DownloadingLabel = "Downloading..."
)

var controlLabels = map[string]string{
	ControlPrev:    "‹ Prev",
	ControlNext:    "Next ›",
	ControlZoomOut: "− Zoom out",
	ControlZoomIn:  "+ Zoom in",
	ControlClose:   "× Close",
}

// LightboxControls is the row of buttons inside the lightbox. Tab moves
// focus between them and Enter presses the focused one.
type LightboxControls struct {
	Focus FocusManager
}

// NewLightboxControls creates the control row with nothing focused.
func NewLightboxControls() *LightboxControls {
	return &LightboxControls{
		Focus: FocusManager{
			Order: []string{ControlPrev, ControlNext, ControlZoomOut, ControlZoomIn, ControlDownload, ControlClose},
		},
	}
}

// Reset clears focus. Called whenever the lightbox opens.
func (c *LightboxControls) Reset() {
	c.Focus.Current = ""
}

// Press returns the message for pressing control id, or nil for unknown ids.
func (c *LightboxControls) Press(id string) tea.Msg {
	switch id {
	case ControlPrev:
		return PrevImageMsg{}
	case ControlNext:
		return NextImageMsg{}
	case ControlZoomOut:
		return ZoomOutMsg{}
	case ControlZoomIn:
		return ZoomInMsg{}
	case ControlDownload:
		return DownloadMsg{}
	case ControlClose:
		return CloseLightboxMsg{}
	}
	return nil
}

// Activate presses the focused control. Returns nil when nothing is focused.
func (c *LightboxControls) Activate() tea.Msg {
	return c.Press(c.Focus.Current)
}

// View renders the buttons. downloadLabel replaces the download button text.
func (c *LightboxControls) View(downloadLabel string) string {
	parts := make([]string, 0, len(c.Focus.Order))
	for _, id := range c.Focus.Order {
		label := c.label(id, downloadLabel)
		style := Styles.Button
		if id == c.Focus.Current {
			style = Styles.ButtonFocused
		}
		parts = append(parts, style.Render("["+label+"]"))
	}
	return strings.Join(parts, " ")
}

func (c *LightboxControls) label(id, downloadLabel string) string {
	if id == ControlDownload {
		return downloadLabel
	}
	return controlLabels[id]
}
