package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorSuccess = lipgloss.Color("#73F59F")
	ColorWarning = lipgloss.Color("#F5A623")
	ColorDanger  = lipgloss.Color("#F56565")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorBorder  = lipgloss.Color("#3F3F46")
	ColorText    = lipgloss.Color("#E4E4E7")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F1F23")).
			Padding(0, 1)

	DriveTabActive = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1).
			Bold(true)

	DriveTabInactive = lipgloss.NewStyle().
				Background(lipgloss.Color("#3F3F46")).
				Foreground(lipgloss.Color("#A1A1AA")).
				Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	BrowserPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	RowCursor = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	RowSelected = lipgloss.NewStyle().
			Background(lipgloss.Color("#3B3263")).
			Foreground(lipgloss.Color("#FFFFFF"))

	RowFolder = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#93C5FD")).
			Bold(true)

	RowPending = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorDanger).
				Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// FormatSize formats bytes for display: integer-truncated division at
// each unit boundary, so 1536 bytes renders as "1 KB".
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%d TB", bytes/TB)
	case bytes >= GB:
		return fmt.Sprintf("%d GB", bytes/GB)
	case bytes >= MB:
		return fmt.Sprintf("%d MB", bytes/MB)
	case bytes >= KB:
		return fmt.Sprintf("%d KB", bytes/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
