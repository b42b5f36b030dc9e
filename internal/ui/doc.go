// Package ui renders the gallery as a Bubble Tea program.
//
// Composition:
//   - AppModel: the shell. Page title, status line, modal overlays, keybinds.
//   - GalleryView: owns the catalog and the lightbox state machine; renders
//     the thumbnail grid or the lightbox.
//   - LightboxControls: focusable buttons inside the lightbox.
//   - AlertModal: blocking notification shown on top of everything.
//
// All state changes happen in Update on the event loop. The only background
// work is the image download, which reports back with DownloadFinishedMsg.
package ui
