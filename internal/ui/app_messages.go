package ui

import "photogallery/internal/download"

// SelectImageMsg opens the lightbox on an image (tile click or Enter).
type SelectImageMsg struct {
	ID int
}

// CloseLightboxMsg closes the lightbox and resets zoom.
type CloseLightboxMsg struct{}

// PrevImageMsg shows the previous image, wrapping to the last.
type PrevImageMsg struct{}

// NextImageMsg shows the next image, wrapping to the first.
type NextImageMsg struct{}

// ZoomInMsg increases zoom by one step.
type ZoomInMsg struct{}

// ZoomOutMsg decreases zoom by one step.
type ZoomOutMsg struct{}

// DownloadMsg starts downloading the image currently shown in the lightbox.
type DownloadMsg struct{}

// DownloadFinishedMsg reports the outcome of a download started by DownloadMsg.
// It may arrive after the lightbox has moved on or closed.
type DownloadFinishedMsg struct {
	ImageID int
	Result  download.Result
	Err     error
}

// ShowAlertMsg pushes a blocking alert modal.
type ShowAlertMsg struct {
	Modal *AlertModal
}

// StatusMsg sets the shell's status line.
type StatusMsg struct {
	Text    string
	IsError bool
}

// DismissModalMsg is sent when the user acknowledges or cancels a modal.
type DismissModalMsg struct{}

// OpenFocusedMsg opens the lightbox on the focused tile.
type OpenFocusedMsg struct{}
