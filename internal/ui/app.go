package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"photogallery/internal/catalog"
)

// PageTitle is the header shown above the gallery.
const PageTitle = "My Photo Gallery"

// Lines the shell draws around the gallery.
const (
	headerLines = 2 // title + blank
	footerLines = 2 // status + hint bar
)

// AppModel is the page shell. It mounts the gallery, owns the status line
// and shows alert overlays above everything else.
type AppModel struct {
	Gallery       *GalleryView
	Overlays      OverlayStack
	KeyHandler    *KeyHandler
	Status        string
	StatusIsError bool

	width  int
	height int
	log    zerolog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Gallery.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		_, cmd := a.Gallery.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: max(msg.Height-headerLines-footerLines, 0),
		})
		return a, cmd

	case ShowAlertMsg:
		if msg.Modal != nil {
			a.log.Debug().Str("title", msg.Modal.Title).Msg("alert shown")
			a.Overlays.Push(Overlay{View: msg.Modal, Dismiss: "esc"})
		}
		return a, nil

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case StatusMsg:
		a.Status = msg.Text
		a.StatusIsError = msg.IsError
		return a, nil

	case tea.KeyMsg:
		// ctrl+c always quits, even under an alert.
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Alerts block everything below them.
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Gallery.Mode()); consumed {
				return a, keyCmd
			}
		}

	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
		msg.Y -= headerLines
		_, cmd := a.Gallery.Update(msg)
		return a, cmd
	}

	_, cmd := a.Gallery.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	mode := a.Gallery.Mode()
	status := Styles.Status.Render(a.Status)
	if a.StatusIsError {
		status = Styles.Error.Render(a.Status)
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(PageTitle),
		"",
		a.Gallery.View(),
		status,
		RenderHintBar(mode),
	)
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, mode)
	}
	return base
}

// NewAppModel creates the root application model over catalog c.
func NewAppModel(c catalog.Catalog, d Downloader, log zerolog.Logger) *AppModel {
	grid := []AppMode{ModeGrid}
	box := []AppMode{ModeLightbox}

	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("q", tea.Quit, "Quit", grid)
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDescForMode("SPC o", msgCmd(OpenFocusedMsg{}), "Open image", grid)
	reg.BindWithDescForMode("SPC n", msgCmd(NextImageMsg{}), "Next image", box)
	reg.BindWithDescForMode("SPC p", msgCmd(PrevImageMsg{}), "Previous image", box)
	reg.BindWithDescForMode("SPC d", msgCmd(DownloadMsg{}), "Download", box)
	reg.BindWithDescForMode("SPC c", msgCmd(CloseLightboxMsg{}), "Close", box)
	reg.BindWithDescForMode("SPC z i", msgCmd(ZoomInMsg{}), "Zoom in", box)
	reg.BindWithDescForMode("SPC z o", msgCmd(ZoomOutMsg{}), "Zoom out", box)

	return &AppModel{
		Gallery:    NewGalleryView(c, d, log),
		KeyHandler: NewKeyHandler(reg),
		log:        log,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
