package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

// DriveSelector displays a list of available drives for selection
type DriveSelector struct {
	drives   []model.Drive
	selected int
	visible  bool
	width    int
	height   int
}

// NewDriveSelector creates a new drive selector component
func NewDriveSelector(drives []model.Drive) DriveSelector {
	return DriveSelector{drives: drives}
}

// Selected returns the index of the currently highlighted drive
func (d DriveSelector) Selected() int {
	return d.selected
}

// SetVisible sets visibility of the selector
func (d *DriveSelector) SetVisible(visible bool) {
	d.visible = visible
}

// IsVisible returns whether the selector is visible
func (d DriveSelector) IsVisible() bool {
	return d.visible
}

// SetSize sets the dimensions for centering
func (d *DriveSelector) SetSize(w, h int) {
	d.width = w
	d.height = h
}

// MoveUp moves selection up
func (d *DriveSelector) MoveUp() {
	if d.selected > 0 {
		d.selected--
	}
}

// MoveDown moves selection down
func (d *DriveSelector) MoveDown() {
	if d.selected < len(d.drives)-1 {
		d.selected++
	}
}

// View renders the drive selector overlay
func (d DriveSelector) View() string {
	if !d.visible || len(d.drives) == 0 {
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

	hintStyle := lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	var content strings.Builder
	content.WriteString(titleStyle.Render("Select Drive"))
	content.WriteString("\n")

	for i, drive := range d.drives {
		line := fmt.Sprintf("%s: %s free / %s (%.0f%% used)",
			drive.Name, FormatSize(drive.FreeBytes), FormatSize(drive.TotalBytes),
			drive.UsedPercent())

		if i == d.selected {
			content.WriteString(selectedStyle.Render(line))
		} else {
			content.WriteString(normalStyle.Render(line))
		}
		content.WriteString("\n")
	}

	content.WriteString(hintStyle.Render("↑/↓ select  Enter confirm  Esc cancel"))

	box := boxStyle.Render(strings.TrimSuffix(content.String(), "\n"))
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
}
