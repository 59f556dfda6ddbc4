package tui

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/bluebook/internal/core/bluebook"
	"github.com/colonyops/bluebook/internal/core/styles"
)

// View renders the navigator.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	parts := []string{styles.TitleStyle.Render("Bluebook Navigator")}
	if status := m.statusLine(); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, "", m.dialog.View())

	if m.alert != "" {
		parts = append(parts, "", styles.AlertStyle.Render(m.alert))
	}
	if m.opened != "" {
		parts = append(parts, "", styles.TextSuccessStyle.Render("Opened "+m.opened))
	}

	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) statusLine() string {
	var lines []string

	switch {
	case m.loadingDocs && m.loadingIndex:
		lines = append(lines, m.spinner.View()+" Loading documents and index...")
	case m.loadingDocs:
		lines = append(lines, m.spinner.View()+" Loading documents...")
	case m.loadingIndex:
		lines = append(lines, m.spinner.View()+" Loading index...")
	}

	if m.docsErr != nil && !m.loadingDocs {
		lines = append(lines, styles.TextErrorStyle.Render("Could not load documents: "+m.docsErr.Error()+" (press r to retry)"))
	}
	if m.index.State() == bluebook.IndexFailed && !m.loadingIndex {
		lines = append(lines, styles.TextErrorStyle.Render("Index unavailable: "+m.index.Err().Error()+" (press r to retry)"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
