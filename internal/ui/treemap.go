package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeffwilliams/squarify"
	"github.com/mattn/go-runewidth"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

// treemapItem wraps an entry for the squarify algorithm
type treemapItem struct {
	entry    *model.Entry
	size     float64
	children []*treemapItem
}

// Size implements squarify.TreeSizer
func (t *treemapItem) Size() float64 {
	return t.size
}

// NumChildren implements squarify.TreeSizer
func (t *treemapItem) NumChildren() int {
	return len(t.children)
}

// Child implements squarify.TreeSizer
func (t *treemapItem) Child(i int) squarify.TreeSizer {
	return t.children[i]
}

// treemapBlock is a laid-out rectangle in terminal cells
type treemapBlock struct {
	entry         *model.Entry
	x, y          int
	width, height int
}

var treemapPalette = []lipgloss.Color{
	"#3B3263", "#1E3A5F", "#14532D", "#78350F", "#7F1D1D", "#4C1D95",
}

// TreemapOverlay visualizes the current listing's computed sizes
type TreemapOverlay struct {
	entries []*model.Entry
	blocks  []treemapBlock
	visible bool
	width   int
	height  int
}

// NewTreemapOverlay creates a hidden treemap overlay
func NewTreemapOverlay() TreemapOverlay {
	return TreemapOverlay{}
}

// Toggle flips visibility
func (t *TreemapOverlay) Toggle() {
	t.visible = !t.visible
	if t.visible {
		t.layout()
	}
}

// SetVisible sets visibility
func (t *TreemapOverlay) SetVisible(visible bool) {
	t.visible = visible
}

// IsVisible reports whether the overlay is shown
func (t TreemapOverlay) IsVisible() bool {
	return t.visible
}

// SetEntries sets the rows to visualize
func (t *TreemapOverlay) SetEntries(entries []*model.Entry) {
	t.entries = entries
	t.layout()
}

// SetSize sets the dimensions
func (t *TreemapOverlay) SetSize(w, h int) {
	t.width = w
	t.height = h
	t.layout()
}

// layout tiles entries with known non-zero sizes into blocks
func (t *TreemapOverlay) layout() {
	t.blocks = nil

	contentW := t.width - 8
	contentH := t.height - 6
	if contentW < 10 || contentH < 4 {
		return
	}

	var items []*treemapItem
	var total float64
	for _, e := range t.entries {
		if !e.SizeKnown() || e.Size == 0 {
			continue
		}
		items = append(items, &treemapItem{entry: e, size: float64(e.Size)})
		total += float64(e.Size)
	}
	if len(items) == 0 {
		return
	}
	sort.Slice(items, func(i, j int) bool { return items[i].size > items[j].size })

	root := &treemapItem{size: total, children: items}
	rect := squarify.Rect{X: 0, Y: 0, W: float64(contentW), H: float64(contentH)}

	blocks, metas := squarify.Squarify(root, rect, squarify.Options{
		MaxDepth: 1,
		Sort:     true,
	})

	for i, block := range blocks {
		item, ok := block.TreeSizer.(*treemapItem)
		if !ok || item.entry == nil {
			continue
		}
		if i >= len(metas) || metas[i].Depth != 0 {
			continue
		}

		// Round both edges so adjacent blocks share boundaries.
		x := int(math.Round(block.X))
		y := int(math.Round(block.Y))
		w := int(math.Round(block.X+block.W)) - x
		h := int(math.Round(block.Y+block.H)) - y

		if x+w > contentW {
			w = contentW - x
		}
		if y+h > contentH {
			h = contentH - y
		}
		if w < 1 || h < 1 {
			continue
		}

		t.blocks = append(t.blocks, treemapBlock{
			entry: item.entry, x: x, y: y, width: w, height: h,
		})
	}
}

// View renders the overlay
func (t TreemapOverlay) View() string {
	if !t.visible {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	contentW := t.width - 8
	contentH := t.height - 6

	if len(t.blocks) == 0 {
		body := lipgloss.NewStyle().Foreground(ColorMuted).
			Render("No computed sizes to display yet")
		box := boxStyle.Render(titleStyle.Render("Folder sizes") + "\n\n" + body)
		return lipgloss.Place(t.width, t.height, lipgloss.Center, lipgloss.Center, box)
	}

	var rows []string
	for y := 0; y < contentH; y++ {
		var covering []treemapBlock
		for _, b := range t.blocks {
			if y >= b.y && y < b.y+b.height {
				covering = append(covering, b)
			}
		}
		sort.Slice(covering, func(i, j int) bool { return covering[i].x < covering[j].x })

		var row strings.Builder
		x := 0
		for _, b := range covering {
			if b.x > x {
				row.WriteString(strings.Repeat(" ", b.x-x))
			}
			row.WriteString(t.renderBlockRow(b, y))
			x = b.x + b.width
		}
		if x < contentW {
			row.WriteString(strings.Repeat(" ", contentW-x))
		}
		rows = append(rows, row.String())
	}

	content := titleStyle.Render("Folder sizes") + "\n\n" + strings.Join(rows, "\n")
	box := boxStyle.Render(content)
	return lipgloss.Place(t.width, t.height, lipgloss.Center, lipgloss.Center, box)
}

// renderBlockRow renders one horizontal slice of a block; the first
// row carries the label.
func (t TreemapOverlay) renderBlockRow(b treemapBlock, y int) string {
	idx := 0
	for i, blk := range t.blocks {
		if blk.entry == b.entry {
			idx = i
			break
		}
	}
	style := lipgloss.NewStyle().
		Background(treemapPalette[idx%len(treemapPalette)]).
		Foreground(lipgloss.Color("#FFFFFF"))

	text := ""
	if y == b.y {
		text = fmt.Sprintf(" %s %s", b.entry.Name, FormatSize(b.entry.Size))
		text = runewidth.Truncate(text, b.width, "")
	}
	return style.Render(runewidth.FillRight(text, b.width))
}
