package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
	"github.com/Prathameshp2025/WrapExplorer/internal/selection"
)

const (
	sizeColumnWidth = 10
	typeColumnWidth = 14
	timeColumnWidth = 16
	timeFormat      = "2006-01-02 15:04"
)

// BrowserPanel renders the current directory listing and owns cursor,
// scroll and multi-selection state.
type BrowserPanel struct {
	entries  []*model.Entry
	byPath   map[string]*model.Entry
	selected map[string]struct{}
	cursor   int
	offset   int
	width    int
	height   int
}

// NewBrowserPanel creates an empty browser panel
func NewBrowserPanel() BrowserPanel {
	return BrowserPanel{
		byPath:   make(map[string]*model.Entry),
		selected: make(map[string]struct{}),
	}
}

// SetEntries replaces the listing. Cursor, scroll and selection reset:
// the old rows no longer exist.
func (b *BrowserPanel) SetEntries(entries []*model.Entry) {
	b.entries = entries
	b.byPath = make(map[string]*model.Entry, len(entries))
	for _, e := range entries {
		b.byPath[e.Path] = e
	}
	b.selected = make(map[string]struct{})
	b.cursor = 0
	b.offset = 0
}

// Entries returns the current listing
func (b *BrowserPanel) Entries() []*model.Entry {
	return b.entries
}

// ApplySize writes a computed folder size onto the matching entry.
// Returns false when the entry is no longer part of the listing.
func (b *BrowserPanel) ApplySize(path string, size int64) bool {
	entry, ok := b.byPath[path]
	if !ok {
		return false
	}
	entry.Size = size
	return true
}

// PendingSizes reports how many folder rows still await a size.
func (b *BrowserPanel) PendingSizes() int {
	n := 0
	for _, e := range b.entries {
		if e.IsFolder() && !e.SizeKnown() {
			n++
		}
	}
	return n
}

// SetSize sets the outer panel dimensions
func (b *BrowserPanel) SetSize(w, h int) {
	b.width = w
	b.height = h
	b.scroll()
}

// CursorEntry returns the entry under the cursor, or nil
func (b *BrowserPanel) CursorEntry() *model.Entry {
	if b.cursor < 0 || b.cursor >= len(b.entries) {
		return nil
	}
	return b.entries[b.cursor]
}

// MoveUp moves the cursor up one row
func (b *BrowserPanel) MoveUp() {
	if b.cursor > 0 {
		b.cursor--
		b.scroll()
	}
}

// MoveDown moves the cursor down one row
func (b *BrowserPanel) MoveDown() {
	if b.cursor < len(b.entries)-1 {
		b.cursor++
		b.scroll()
	}
}

// GoToTop moves the cursor to the first row
func (b *BrowserPanel) GoToTop() {
	b.cursor = 0
	b.scroll()
}

// GoToBottom moves the cursor to the last row
func (b *BrowserPanel) GoToBottom() {
	if len(b.entries) > 0 {
		b.cursor = len(b.entries) - 1
		b.scroll()
	}
}

// PageUp moves the cursor up one page
func (b *BrowserPanel) PageUp() {
	b.cursor -= b.visibleRows()
	if b.cursor < 0 {
		b.cursor = 0
	}
	b.scroll()
}

// PageDown moves the cursor down one page
func (b *BrowserPanel) PageDown() {
	b.cursor += b.visibleRows()
	if b.cursor >= len(b.entries) {
		b.cursor = len(b.entries) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
	b.scroll()
}

// SetCursor places the cursor on the given row index
func (b *BrowserPanel) SetCursor(idx int) {
	if idx >= 0 && idx < len(b.entries) {
		b.cursor = idx
		b.scroll()
	}
}

// Scroll moves the viewport without touching the cursor
func (b *BrowserPanel) Scroll(delta int) {
	b.offset += delta
	max := len(b.entries) - b.visibleRows()
	if max < 0 {
		max = 0
	}
	if b.offset > max {
		b.offset = max
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

// Selected returns the current selection set, keyed by path.
func (b *BrowserPanel) Selected() map[string]struct{} {
	return b.selected
}

// SetSelected replaces the selection set.
func (b *BrowserPanel) SetSelected(sel map[string]struct{}) {
	if sel == nil {
		sel = make(map[string]struct{})
	}
	b.selected = sel
}

// ToggleSelect flips membership of one path in the selection.
func (b *BrowserPanel) ToggleSelect(path string) {
	if _, ok := b.selected[path]; ok {
		delete(b.selected, path)
	} else {
		b.selected[path] = struct{}{}
	}
}

// ClearSelection empties the selection set.
func (b *BrowserPanel) ClearSelection() {
	b.selected = make(map[string]struct{})
}

// RowAt maps a content-local y coordinate to a listing index, or -1.
func (b *BrowserPanel) RowAt(contentY int) int {
	idx := b.offset + contentY
	if contentY < 0 || idx < 0 || idx >= len(b.entries) || contentY >= b.visibleRows() {
		return -1
	}
	return idx
}

// RowBoxes returns the bounding box of every visible row in
// content-local coordinates, keyed by entry path. Each row is one
// cell high, so boxes use inclusive cell bounds (H = 0).
func (b *BrowserPanel) RowBoxes() map[string]selection.Rect {
	boxes := make(map[string]selection.Rect)
	rowW := float64(b.contentWidth() - 1)
	if rowW < 0 {
		rowW = 0
	}
	for i := 0; i < b.visibleRows(); i++ {
		idx := b.offset + i
		if idx >= len(b.entries) {
			break
		}
		boxes[b.entries[idx].Path] = selection.Rect{X: 0, Y: float64(i), W: rowW, H: 0}
	}
	return boxes
}

func (b *BrowserPanel) visibleRows() int {
	rows := b.height - 2 // border
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (b *BrowserPanel) contentWidth() int {
	w := b.width - 4 // border + padding
	if w < 1 {
		w = 1
	}
	return w
}

// scroll keeps the cursor inside the viewport
func (b *BrowserPanel) scroll() {
	rows := b.visibleRows()
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+rows {
		b.offset = b.cursor - rows + 1
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

// View renders the panel
func (b *BrowserPanel) View() string {
	rows := b.visibleRows()
	contentW := b.contentWidth()

	var lines []string
	for i := 0; i < rows; i++ {
		idx := b.offset + i
		if idx >= len(b.entries) {
			lines = append(lines, strings.Repeat(" ", contentW))
			continue
		}
		lines = append(lines, b.renderRow(b.entries[idx], idx, contentW))
	}

	content := strings.Join(lines, "\n")
	return BrowserPanelStyle.Width(b.width - 2).Height(rows).Render(content)
}

func (b *BrowserPanel) renderRow(e *model.Entry, idx, width int) string {
	sizeText := "..."
	if e.SizeKnown() {
		sizeText = FormatSize(e.Size)
	}

	name := e.Name
	if e.IsFolder() {
		name += "/"
	}

	nameW := width - sizeColumnWidth - typeColumnWidth - timeColumnWidth - 3
	if nameW < 8 {
		nameW = 8
	}
	// Cell-width aware: names can hold multibyte and wide runes.
	if runewidth.StringWidth(name) > nameW {
		name = runewidth.Truncate(name, nameW, "…")
	}

	line := fmt.Sprintf("%s %s %s %s",
		runewidth.FillRight(name, nameW),
		runewidth.FillLeft(sizeText, sizeColumnWidth),
		runewidth.FillRight(e.TypeLabel, typeColumnWidth),
		e.ModTime.Format(timeFormat))
	line = runewidth.Truncate(line, width, "")
	line = runewidth.FillRight(line, width)

	_, isSelected := b.selected[e.Path]
	switch {
	case idx == b.cursor:
		return RowCursor.Render(line)
	case isSelected:
		return RowSelected.Render(line)
	case e.IsFolder() && !e.SizeKnown():
		return RowPending.Render(line)
	case e.IsFolder():
		return RowFolder.Render(line)
	default:
		return RowStyle.Render(line)
	}
}
