package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

// Header displays drive tabs, the current path and size-round progress
type Header struct {
	drives   []model.Drive
	selected int
	path     string
	pending  int
	width    int
}

// NewHeader creates a new header component
func NewHeader(drives []model.Drive) Header {
	return Header{drives: drives}
}

// SetSelected sets the selected drive index
func (h *Header) SetSelected(idx int) {
	if idx >= 0 && idx < len(h.drives) {
		h.selected = idx
	}
}

// Selected returns the currently selected drive
func (h Header) Selected() *model.Drive {
	if h.selected < 0 || h.selected >= len(h.drives) {
		return nil
	}
	return &h.drives[h.selected]
}

// SetPath sets the displayed directory path
func (h *Header) SetPath(path string) {
	h.path = path
}

// SetPending sets how many folder sizes are still being computed
func (h *Header) SetPending(n int) {
	h.pending = n
}

// SetWidth sets the header width
func (h *Header) SetWidth(w int) {
	h.width = w
}

// View renders the header (two lines: tabs, path + drive usage)
func (h Header) View() string {
	appName := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C084FC")).
		Bold(true).
		Render("WRAPEXPLORER")

	var tabs []string
	for i, d := range h.drives {
		label := d.Name
		if d.Label != "" && d.Label != d.Name {
			label = fmt.Sprintf("%s %s", d.Name, d.Label)
		}
		if i == h.selected {
			tabs = append(tabs, DriveTabActive.Render(label))
		} else {
			tabs = append(tabs, DriveTabInactive.Render(label))
		}
	}
	driveTabs := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	top := HeaderStyle.Width(h.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, appName, "  ", driveTabs))

	pathLine := PathStyle.Render(" " + h.path)

	var right string
	if h.pending > 0 {
		right = lipgloss.NewStyle().Foreground(ColorWarning).
			Render(fmt.Sprintf("computing %d folder sizes… ", h.pending))
	} else if d := h.Selected(); d != nil {
		right = lipgloss.NewStyle().Foreground(ColorMuted).
			Render(fmt.Sprintf("%s free of %s (%.0f%% used) ",
				FormatSize(d.FreeBytes), FormatSize(d.TotalBytes), d.UsedPercent()))
	}

	gap := h.width - lipgloss.Width(pathLine) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bottom := pathLine + lipgloss.NewStyle().Width(gap).Render("") + right

	return top + "\n" + bottom
}
