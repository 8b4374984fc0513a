package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpKeyColumnWidth = 12 // Width for key column in help text

// HelpOverlay displays keyboard shortcuts in a centered overlay
type HelpOverlay struct {
	visible bool
	width   int
	height  int
}

// NewHelpOverlay creates a new help overlay component
func NewHelpOverlay() HelpOverlay {
	return HelpOverlay{}
}

// Toggle toggles the visibility of the help overlay
func (h *HelpOverlay) Toggle() {
	h.visible = !h.visible
}

// SetVisible sets the visibility of the help overlay
func (h *HelpOverlay) SetVisible(visible bool) {
	h.visible = visible
}

// IsVisible returns whether the help overlay is visible
func (h HelpOverlay) IsVisible() bool {
	return h.visible
}

// SetSize sets the dimensions of the help overlay
func (ho *HelpOverlay) SetSize(w, h int) {
	ho.width = w
	ho.height = h
}

// View renders the help overlay
func (h HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		Bold(true).
		MarginTop(1)

	descStyle := lipgloss.NewStyle().Foreground(ColorText)

	row := func(keys, desc string) string {
		return fmt.Sprintf("%s %s",
			HelpKey.Width(helpKeyColumnWidth).Render(keys),
			descStyle.Render(desc))
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("WrapExplorer — Keyboard & Mouse"))
	content.WriteString("\n")

	content.WriteString(sectionStyle.Render("Navigation"))
	content.WriteString("\n")
	content.WriteString(row("↑/k ↓/j", "move cursor"))
	content.WriteString("\n")
	content.WriteString(row("enter", "open folder / launch file"))
	content.WriteString("\n")
	content.WriteString(row("bksp/h", "go to parent"))
	content.WriteString("\n")
	content.WriteString(row("g / G", "top / bottom"))
	content.WriteString("\n")
	content.WriteString(row("D", "drive selector"))
	content.WriteString("\n")
	content.WriteString(row("r", "reload listing"))
	content.WriteString("\n")

	content.WriteString(sectionStyle.Render("Selection"))
	content.WriteString("\n")
	content.WriteString(row("drag", "marquee select"))
	content.WriteString("\n")
	content.WriteString(row("ctrl+drag", "add to selection"))
	content.WriteString("\n")
	content.WriteString(row("space", "toggle row"))
	content.WriteString("\n")

	content.WriteString(sectionStyle.Render("Actions"))
	content.WriteString("\n")
	content.WriteString(row("m / right-click", "context menu"))
	content.WriteString("\n")
	content.WriteString(row("t", "treemap of folder sizes"))
	content.WriteString("\n")
	content.WriteString(row("? / q", "help / quit"))

	return boxStyle.Render(content.String())
}

// HelpBar renders the one-line hint bar at the bottom of the screen
func HelpBar(width int) string {
	hints := []string{
		HelpKey.Render("↑↓") + HelpStyle.Render("move"),
		HelpKey.Render("enter") + HelpStyle.Render("open"),
		HelpKey.Render("drag") + HelpStyle.Render("select"),
		HelpKey.Render("m") + HelpStyle.Render("menu"),
		HelpKey.Render("t") + HelpStyle.Render("treemap"),
		HelpKey.Render("?") + HelpStyle.Render("help"),
		HelpKey.Render("q") + HelpStyle.Render("quit"),
	}
	bar := strings.Join(hints, " ")
	return lipgloss.NewStyle().Width(width).Render(bar)
}
