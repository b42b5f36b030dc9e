package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"photogallery/internal/catalog"
	"photogallery/internal/lightbox"
	"photogallery/internal/ui/textutil"
)

// Grid geometry in terminal cells. Tile sizes include the border.
const (
	tileWidth    = 24
	tileHeight   = 7
	tileGap      = 1
	headingLines = 2 // heading + blank line above the grid

	defaultWidth = 80

	closeHint = "× Esc"

	// Unzoomed image frame size inside the lightbox.
	frameWidth  = 24
	frameHeight = 6
)

// GalleryView owns the catalog and the lightbox state machine. It renders
// the thumbnail grid, or the lightbox when an image is open.
type GalleryView struct {
	Catalog    catalog.Catalog
	Lightbox   *lightbox.Machine
	Controls   *LightboxControls
	Downloader Downloader
	Ctx        context.Context
	Cursor     int // focused tile

	downloading map[int]int // image id -> in-flight downloads
	spinner     spinner.Model
	rowOffset   int
	width       int
	height      int
	log         zerolog.Logger
}

// Ensure GalleryView implements View.
var _ View = (*GalleryView)(nil)

// NewGalleryView creates a gallery over c with the lightbox closed.
func NewGalleryView(c catalog.Catalog, d Downloader, log zerolog.Logger) *GalleryView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	g := &GalleryView{
		Catalog:     c,
		Lightbox:    lightbox.NewMachine(c),
		Controls:    NewLightboxControls(),
		Downloader:  d,
		Ctx:         context.Background(),
		downloading: make(map[int]int),
		spinner:     s,
		log:         log.With().Str("component", "gallery").Logger(),
	}
	g.Controls.Focus.OnChange = func(from, to string) {
		g.log.Debug().Str("from", from).Str("to", to).Msg("control focus")
	}
	return g
}

// Mode reports whether the grid or the lightbox is showing.
func (g *GalleryView) Mode() AppMode {
	if g.Lightbox.State().IsOpen() {
		return ModeLightbox
	}
	return ModeGrid
}

// Downloading reports whether a download of image id is in flight.
func (g *GalleryView) Downloading(id int) bool {
	return g.downloading[id] > 0
}

// Init implements View.
func (g *GalleryView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (g *GalleryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		g.height = msg.Height
		g.ensureCursorVisible()
		return g, nil

	case SelectImageMsg:
		if err := g.Lightbox.Select(msg.ID); err != nil {
			g.log.Warn().Err(err).Int("image_id", msg.ID).Msg("select ignored")
			return g, msgCmd(StatusMsg{Text: err.Error(), IsError: true})
		}
		g.Controls.Reset()
		g.syncCursor()
		return g, nil

	case OpenFocusedMsg:
		if g.Mode() != ModeGrid || g.Cursor >= g.Catalog.Len() {
			return g, nil
		}
		return g.Update(SelectImageMsg{ID: g.Catalog.At(g.Cursor).ID})

	case CloseLightboxMsg:
		g.Lightbox.Close()
		return g, nil

	case PrevImageMsg:
		g.navigated(g.Lightbox.Prev())
		return g, nil

	case NextImageMsg:
		g.navigated(g.Lightbox.Next())
		return g, nil

	case ZoomInMsg:
		g.Lightbox.ZoomIn()
		return g, nil

	case ZoomOutMsg:
		g.Lightbox.ZoomOut()
		return g, nil

	case DownloadMsg:
		img, ok := g.Lightbox.State().Image()
		if !ok {
			return g, nil
		}
		g.downloading[img.ID]++
		g.log.Debug().Int("image_id", img.ID).Str("title", img.Title).Msg("download started")
		return g, tea.Batch(downloadCmd(g.Ctx, g.Downloader, img), g.spinner.Tick)

	case DownloadFinishedMsg:
		if g.downloading[msg.ImageID] > 1 {
			g.downloading[msg.ImageID]--
		} else {
			delete(g.downloading, msg.ImageID)
		}
		if msg.Err != nil {
			g.log.Error().Err(msg.Err).Int("image_id", msg.ImageID).Msg("download failed")
			return g, msgCmd(ShowAlertMsg{Modal: NewDownloadFailedModal(msg.Err)})
		}
		return g, msgCmd(StatusMsg{Text: "Saved " + msg.Result.Path})

	case spinner.TickMsg:
		if len(g.downloading) == 0 {
			return g, nil
		}
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)
		return g, cmd

	case tea.MouseMsg:
		return g.handleMouse(msg)

	case tea.KeyMsg:
		if g.Mode() == ModeLightbox {
			return g.handleLightboxKey(msg)
		}
		return g.handleGridKey(msg)
	}
	return g, nil
}

// navigated keeps the grid cursor on the shown image and logs when
// navigation had to fall back because the image left the catalog.
func (g *GalleryView) navigated(found bool) {
	if !found {
		g.log.Warn().Msg("selected image not in catalog; navigated from first position")
	}
	g.syncCursor()
}

func (g *GalleryView) syncCursor() {
	img, ok := g.Lightbox.State().Image()
	if !ok {
		return
	}
	if i, found := g.Catalog.IndexOf(img.ID); found {
		g.Cursor = i
		g.ensureCursorVisible()
	}
}

func (g *GalleryView) handleGridKey(msg tea.KeyMsg) (View, tea.Cmd) {
	n := g.Catalog.Len()
	if n == 0 {
		return g, nil
	}
	cols := g.columns()
	switch msg.String() {
	case "right", "l":
		g.moveCursor(1)
	case "left", "h":
		g.moveCursor(-1)
	case "down", "j":
		g.moveCursor(cols)
	case "up", "k":
		g.moveCursor(-cols)
	case "home", "g":
		g.Cursor = 0
	case "end", "G":
		g.Cursor = n - 1
	case "enter":
		return g.Update(OpenFocusedMsg{})
	default:
		return g, nil
	}
	g.ensureCursorVisible()
	return g, nil
}

// moveCursor moves tile focus by delta, clamped to the catalog.
func (g *GalleryView) moveCursor(delta int) {
	c := g.Cursor + delta
	if c < 0 || c >= g.Catalog.Len() {
		return
	}
	g.Cursor = c
}

func (g *GalleryView) handleLightboxKey(msg tea.KeyMsg) (View, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return g.Update(CloseLightboxMsg{})
	case "left", "h":
		return g.Update(PrevImageMsg{})
	case "right", "l":
		return g.Update(NextImageMsg{})
	case "+", "=":
		return g.Update(ZoomInMsg{})
	case "-", "_":
		return g.Update(ZoomOutMsg{})
	case "d":
		return g.Update(DownloadMsg{})
	case "tab":
		g.Controls.Focus.Next()
	case "shift+tab":
		g.Controls.Focus.Prev()
	case "enter":
		if m := g.Controls.Activate(); m != nil {
			return g.Update(m)
		}
	}
	return g, nil
}

func (g *GalleryView) handleMouse(msg tea.MouseMsg) (View, tea.Cmd) {
	if g.Mode() == ModeLightbox {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return g.Update(ZoomInMsg{})
		case tea.MouseButtonWheelDown:
			return g.Update(ZoomOutMsg{})
		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress {
				return g, nil
			}
			id, ok := g.ControlAt(msg.X, msg.Y)
			if !ok {
				return g, nil
			}
			g.Controls.Focus.SetFocus(id)
			return g.Update(g.Controls.Press(id))
		}
		return g, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return g, nil
	}
	idx, ok := g.TileAt(msg.X, msg.Y)
	if !ok {
		return g, nil
	}
	g.Cursor = idx
	return g.Update(SelectImageMsg{ID: g.Catalog.At(idx).ID})
}

// TileAt maps a cell position, relative to the gallery's top-left corner,
// to a catalog index. Gaps between tiles hit nothing.
func (g *GalleryView) TileAt(x, y int) (int, bool) {
	if x < 0 || y < headingLines {
		return 0, false
	}
	if x%(tileWidth+tileGap) >= tileWidth {
		return 0, false
	}
	col := x / (tileWidth + tileGap)
	cols := g.columns()
	if col >= cols {
		return 0, false
	}
	row := (y-headingLines)/tileHeight + g.rowOffset
	if g.visibleRows() > 0 && row >= g.rowOffset+g.visibleRows() {
		return 0, false
	}
	idx := row*cols + col
	if idx >= g.Catalog.Len() {
		return 0, false
	}
	return idx, true
}

// lightboxTarget is clickable text in the lightbox. skip rejects an
// occurrence at byte offset i, for glyphs shared with button labels.
type lightboxTarget struct {
	text string
	id   string
	skip func(line string, i int) bool
}

// ControlAt maps a cell position, relative to the gallery's top-left
// corner, to the lightbox control drawn there. Besides the button row, the
// ‹ › arrows, the [−] [+] zoom bar and the close hint are clickable.
func (g *GalleryView) ControlAt(x, y int) (string, bool) {
	if g.Mode() != ModeLightbox || x < 0 || y < 0 {
		return "", false
	}
	lines := strings.Split(ansi.Strip(g.viewLightbox()), "\n")
	if y >= len(lines) {
		return "", false
	}
	line := lines[y]

	img, _ := g.Lightbox.State().Image()
	label := ansi.Strip(g.downloadLabel(img.ID))
	targets := make([]lightboxTarget, 0, len(g.Controls.Focus.Order)+5)
	for _, id := range g.Controls.Focus.Order {
		targets = append(targets, lightboxTarget{text: "[" + g.Controls.label(id, label) + "]", id: id})
	}
	targets = append(targets,
		lightboxTarget{text: "[−]", id: ControlZoomOut},
		lightboxTarget{text: "[+]", id: ControlZoomIn},
		lightboxTarget{text: closeHint, id: ControlClose},
		lightboxTarget{text: "‹", id: ControlPrev, skip: func(l string, i int) bool {
			return i > 0 && l[i-1] == '['
		}},
		lightboxTarget{text: "›", id: ControlNext, skip: func(l string, i int) bool {
			end := i + len("›")
			return end < len(l) && l[end] == ']'
		}},
	)
	for _, t := range targets {
		if spanHit(line, t, x) {
			return t.id, true
		}
	}
	return "", false
}

// spanHit reports whether column x falls on an occurrence of t.text in line.
func spanHit(line string, t lightboxTarget, x int) bool {
	for off := 0; off < len(line); {
		i := strings.Index(line[off:], t.text)
		if i < 0 {
			return false
		}
		i += off
		off = i + len(t.text)
		if t.skip != nil && t.skip(line, i) {
			continue
		}
		start := textutil.VisualWidth(line[:i])
		if x >= start && x < start+textutil.VisualWidth(t.text) {
			return true
		}
	}
	return false
}

// columns is how many tiles fit across the current width.
func (g *GalleryView) columns() int {
	w := g.width
	if w <= 0 {
		w = defaultWidth
	}
	cols := (w + tileGap) / (tileWidth + tileGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// visibleRows is how many tile rows fit; 0 means unbounded (size unknown).
func (g *GalleryView) visibleRows() int {
	if g.height <= 0 {
		return 0
	}
	rows := (g.height - headingLines) / tileHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g *GalleryView) ensureCursorVisible() {
	rows := g.visibleRows()
	if rows == 0 {
		g.rowOffset = 0
		return
	}
	row := g.Cursor / g.columns()
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if row >= g.rowOffset+rows {
		g.rowOffset = row - rows + 1
	}
}

// View implements View.
func (g *GalleryView) View() string {
	if g.Mode() == ModeLightbox {
		return g.viewLightbox()
	}
	return g.viewGrid()
}

func (g *GalleryView) viewGrid() string {
	var b strings.Builder
	b.WriteString(Styles.Heading.Render(fmt.Sprintf("My Gallery (%d)", g.Catalog.Len())))
	b.WriteString("\n\n")

	n := g.Catalog.Len()
	if n == 0 {
		b.WriteString(Styles.Empty.Render("No images to show."))
		return b.String()
	}

	cols := g.columns()
	totalRows := (n + cols - 1) / cols
	first, last := g.rowOffset, totalRows
	if rows := g.visibleRows(); rows > 0 && first+rows < last {
		last = first + rows
	}

	rendered := make([]string, 0, last-first)
	for row := first; row < last; row++ {
		tiles := make([]string, 0, cols*2)
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx >= n {
				break
			}
			if col > 0 {
				tiles = append(tiles, strings.Repeat(" ", tileGap))
			}
			tiles = append(tiles, renderTile(g.Catalog.At(idx), idx == g.Cursor))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rendered...))
	return b.String()
}

// renderTile draws a thumbnail placeholder with the title overlaid on its
// bottom line.
func renderTile(img catalog.Image, focused bool) string {
	inner := tileWidth - 2
	shade := Styles.Muted.Render(strings.Repeat("░", inner))
	lines := make([]string, 0, tileHeight-2)
	for i := 0; i < tileHeight-3; i++ {
		lines = append(lines, shade)
	}
	label := lipgloss.PlaceHorizontal(inner, lipgloss.Center, Styles.TileLabel.Render(textutil.Truncate(img.Title, inner)))
	lines = append(lines, label)

	style := Styles.Tile
	if focused {
		style = Styles.TileFocused
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (g *GalleryView) viewLightbox() string {
	st := g.Lightbox.State()
	img, _ := st.Image()
	zoom := st.Zoom()

	width, height := g.width, g.height
	if width <= 0 {
		width = defaultWidth
	}

	// Image frame scales with zoom, clamped to the space the terminal has.
	fw := int(float64(frameWidth) * float64(zoom))
	fh := int(float64(frameHeight) * float64(zoom))
	if maxW := width - 12; fw > maxW {
		fw = maxW
	}
	if height > 0 {
		if maxH := height - 16; fh > maxH {
			fh = maxH
		}
	}
	fw = max(fw, 8)
	fh = max(fh, 1)

	frameText := strings.Join(textutil.Wrap(img.URL, fw-2, fh), "\n")
	frame := Styles.ImageFrame.
		Width(fw).
		Height(fh).
		Render(Styles.Muted.Render(frameText))

	stage := lipgloss.JoinHorizontal(lipgloss.Center,
		Styles.NavArrow.Render("‹ "),
		frame,
		Styles.NavArrow.Render(" ›"),
	)

	pos := ""
	if i, ok := g.Catalog.IndexOf(img.ID); ok {
		pos = fmt.Sprintf("%d / %d", i+1, g.Catalog.Len())
	}
	top := Styles.Muted.Render(pos) + "  " + Styles.Hint.Render(closeHint)
	zoomBar := Styles.Normal.Render("[−] " + zoom.String() + " [+]")

	downloadLabel := g.downloadLabel(img.ID)

	detailWidth := max(min(width-8, 60), 10)
	details := []string{
		Styles.Heading.Render(img.Title),
	}
	for _, line := range textutil.Wrap(img.Description, detailWidth, 3) {
		details = append(details, Styles.Normal.Render(line))
	}
	details = append(details, Styles.Muted.Render("Date: "+img.Date))

	body := lipgloss.JoinVertical(lipgloss.Center,
		top,
		"",
		zoomBar,
		stage,
		"",
		lipgloss.JoinVertical(lipgloss.Left, details...),
		"",
		g.Controls.View(downloadLabel),
	)
	box := Styles.Lightbox.Render(body)
	if g.height > 0 {
		return lipgloss.Place(width, g.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// downloadLabel is the download button text for image id.
func (g *GalleryView) downloadLabel(id int) string {
	if g.Downloading(id) {
		return g.spinner.View() + " " + DownloadingLabel
	}
	return DownloadLabel
}
