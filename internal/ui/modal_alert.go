package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// DownloadFailedText is the user-facing message for a failed download.
const DownloadFailedText = "Could not download the image. Please try again."

// AlertModal is a blocking notification. It swallows input until the user
// acknowledges it with Enter, Esc or Space.
type AlertModal struct {
	Title   string
	Text    string
	Details string // Optional, e.g. the underlying error
}

// Ensure AlertModal implements View.
var _ View = (*AlertModal)(nil)

// NewAlertModal creates an alert with a title and message.
func NewAlertModal(title, text string) *AlertModal {
	return &AlertModal{Title: title, Text: text}
}

// WithDetails adds a muted details line below the message.
func (m *AlertModal) WithDetails(details string) *AlertModal {
	m.Details = details
	return m
}

// NewDownloadFailedModal creates the alert shown when a download fails.
func NewDownloadFailedModal(err error) *AlertModal {
	m := NewAlertModal("Download failed", DownloadFailedText)
	if err != nil {
		m.WithDetails(err.Error())
	}
	return m
}

// Init implements View.
func (m *AlertModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AlertModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *AlertModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Normal.Render(m.Text)
	if m.Details != "" {
		content += "\n" + Styles.Muted.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("Enter: OK")
	return Styles.BoxDanger.Render(content)
}
