// Package lightbox implements the view-state machine behind the full-screen
// image viewer: which image is shown, at what zoom, and how navigation wraps.
//
// The state is a tagged variant. A Closed state carries no image, so
// "open implies selected" holds by construction.
package lightbox

import (
	"errors"
	"fmt"
	"math"

	"photogallery/internal/catalog"
)

// ErrUnknownImage is returned when selecting an image that is not in the catalog.
var ErrUnknownImage = errors.New("image not in catalog")

// Zoom is a display scale factor.
type Zoom float64

const (
	MinZoom     Zoom = 0.5
	MaxZoom     Zoom = 3.0
	ZoomStep    Zoom = 0.5
	DefaultZoom Zoom = 1.0
)

// Clamp limits z to [MinZoom, MaxZoom].
func (z Zoom) Clamp() Zoom {
	return Zoom(math.Min(math.Max(float64(z), float64(MinZoom)), float64(MaxZoom)))
}

// Percent returns the zoom as a rounded percentage (1.5 -> 150).
func (z Zoom) Percent() int {
	return int(math.Round(float64(z) * 100))
}

func (z Zoom) String() string {
	return fmt.Sprintf("%d%%", z.Percent())
}

// State is either Closed or Open with an image and zoom level.
type State struct {
	open  bool
	image catalog.Image
	zoom  Zoom
}

// Closed returns the closed state.
func Closed() State {
	return State{zoom: DefaultZoom}
}

// Open returns an open state showing img at zoom z (clamped).
func Open(img catalog.Image, z Zoom) State {
	return State{open: true, image: img, zoom: z.Clamp()}
}

// IsOpen reports whether the lightbox is showing an image.
func (s State) IsOpen() bool {
	return s.open
}

// Image returns the displayed image. ok is false when closed.
func (s State) Image() (img catalog.Image, ok bool) {
	if !s.open {
		return catalog.Image{}, false
	}
	return s.image, true
}

// Zoom returns the current zoom. A closed lightbox reports DefaultZoom.
func (s State) Zoom() Zoom {
	if !s.open {
		return DefaultZoom
	}
	return s.zoom
}

// Machine applies lightbox transitions against a fixed catalog.
// It is not safe for concurrent use; callers drive it from one event loop.
type Machine struct {
	catalog catalog.Catalog
	state   State
}

// NewMachine returns a closed machine over c.
func NewMachine(c catalog.Catalog) *Machine {
	return &Machine{catalog: c, state: Closed()}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Select opens the lightbox on the image with the given id at DefaultZoom.
// Selecting while already open replaces the image and resets zoom.
func (m *Machine) Select(id int) error {
	img, ok := m.catalog.Lookup(id)
	if !ok {
		return fmt.Errorf("lightbox: select %d: %w", id, ErrUnknownImage)
	}
	m.state = Open(img, DefaultZoom)
	return nil
}

// Close returns to the closed state. Zoom resets with it.
func (m *Machine) Close() {
	m.state = Closed()
}

// Next moves to the following image, wrapping from last to first.
// It reports false when the current image was not found in the catalog and
// navigation fell back to treating it as position 0. With an empty catalog
// the lightbox closes instead.
func (m *Machine) Next() bool {
	return m.step(1)
}

// Prev moves to the preceding image, wrapping from first to last.
// See Next for the meaning of the result.
func (m *Machine) Prev() bool {
	return m.step(-1)
}

func (m *Machine) step(delta int) bool {
	if !m.state.open {
		return true
	}
	n := m.catalog.Len()
	if n == 0 {
		m.state = Closed()
		return false
	}
	cur, found := m.catalog.IndexOf(m.state.image.ID)
	if !found {
		cur = 0
	}
	next := ((cur+delta)%n + n) % n
	m.state = Open(m.catalog.At(next), m.state.zoom)
	return found
}

// ZoomIn increases zoom by ZoomStep, capped at MaxZoom. No-op when closed.
func (m *Machine) ZoomIn() {
	if !m.state.open {
		return
	}
	m.state.zoom = (m.state.zoom + ZoomStep).Clamp()
}

// ZoomOut decreases zoom by ZoomStep, floored at MinZoom. No-op when closed.
func (m *Machine) ZoomOut() {
	if !m.state.open {
		return
	}
	m.state.zoom = (m.state.zoom - ZoomStep).Clamp()
}

// Restore replaces the current state wholesale. Unlike Select it does not
// check the catalog, so an open state may reference a missing image.
func (m *Machine) Restore(s State) {
	m.state = s
}
