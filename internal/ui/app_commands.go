package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"photogallery/internal/catalog"
	"photogallery/internal/download"
)

// Downloader saves an image somewhere the user can find it.
// *download.Downloader implements it.
type Downloader interface {
	Download(ctx context.Context, img catalog.Image) (download.Result, error)
}

// downloadCmd returns a command that runs the download off the event loop
// and reports back with DownloadFinishedMsg. The download is not cancelled
// when the lightbox closes.
func downloadCmd(ctx context.Context, d Downloader, img catalog.Image) tea.Cmd {
	return func() tea.Msg {
		if d == nil {
			return DownloadFinishedMsg{ImageID: img.ID, Err: fmt.Errorf("download: no downloader configured")}
		}
		res, err := d.Download(ctx, img)
		return DownloadFinishedMsg{ImageID: img.ID, Result: res, Err: err}
	}
}

// msgCmd wraps a message in a command.
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
