package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

// MenuAction identifies a context-menu entry
type MenuAction int

const (
	MenuOpen MenuAction = iota
	MenuReveal
	MenuCopyPath
	MenuCopyName
)

var menuLabels = []string{
	"Open",
	"Reveal in file manager",
	"Copy path",
	"Copy name",
}

// ContextMenu is the per-entry operations overlay
type ContextMenu struct {
	target   *model.Entry
	selected int
	visible  bool
	width    int
	height   int
}

// NewContextMenu creates a hidden context menu
func NewContextMenu() ContextMenu {
	return ContextMenu{}
}

// Open shows the menu for the given entry
func (m *ContextMenu) Open(target *model.Entry) {
	if target == nil {
		return
	}
	m.target = target
	m.selected = 0
	m.visible = true
}

// Close hides the menu
func (m *ContextMenu) Close() {
	m.visible = false
}

// IsVisible returns whether the menu is shown
func (m ContextMenu) IsVisible() bool {
	return m.visible
}

// Target returns the entry the menu was opened for
func (m ContextMenu) Target() *model.Entry {
	return m.target
}

// Action returns the currently highlighted action
func (m ContextMenu) Action() MenuAction {
	return MenuAction(m.selected)
}

// SetSize sets the dimensions for centering
func (m *ContextMenu) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// MoveUp moves the highlight up
func (m *ContextMenu) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

// MoveDown moves the highlight down
func (m *ContextMenu) MoveDown() {
	if m.selected < len(menuLabels)-1 {
		m.selected++
	}
}

// View renders the overlay
func (m ContextMenu) View() string {
	if !m.visible || m.target == nil {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Background(lipgloss.Color("#1F1F23"))

	titleStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)

	normalStyle := lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	var content strings.Builder
	content.WriteString(titleStyle.Render(m.target.Name))
	content.WriteString("\n")

	for i, label := range menuLabels {
		if i == m.selected {
			content.WriteString(selectedStyle.Render(label))
		} else {
			content.WriteString(normalStyle.Render(label))
		}
		content.WriteString("\n")
	}

	box := boxStyle.Render(strings.TrimSuffix(content.String(), "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
