package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/Prathameshp2025/WrapExplorer/internal/model"
)

func TestTreemapLabelTruncatesWideRunes(t *testing.T) {
	e := &model.Entry{
		Name: strings.Repeat("箱", 30),
		Path: "/dir/boxes",
		Kind: model.KindFolder,
		Size: 2048,
	}
	tm := TreemapOverlay{
		blocks: []treemapBlock{{entry: e, x: 0, y: 0, width: 12, height: 2}},
	}

	for y := 0; y < 2; y++ {
		row := tm.renderBlockRow(tm.blocks[0], y)
		if !utf8.ValidString(row) {
			t.Errorf("block row %d is not valid UTF-8", y)
		}
		if w := lipgloss.Width(row); w != 12 {
			t.Errorf("block row %d width = %d, want 12", y, w)
		}
	}
}

func TestTreemapLayoutSkipsPendingAndEmpty(t *testing.T) {
	entries := []*model.Entry{
		{Name: "big", Path: "/d/big", Kind: model.KindFolder, Size: 4096},
		{Name: "waiting", Path: "/d/waiting", Kind: model.KindFolder, Size: model.SizePending},
		{Name: "empty", Path: "/d/empty", Kind: model.KindFolder, Size: 0},
		{Name: "small", Path: "/d/small", Kind: model.KindFolder, Size: 1024},
	}

	tm := NewTreemapOverlay()
	tm.SetSize(80, 24)
	tm.SetEntries(entries)

	for _, b := range tm.blocks {
		if b.entry.Path == "/d/waiting" || b.entry.Path == "/d/empty" {
			t.Errorf("laid out a block for %s", b.entry.Path)
		}
	}
	if len(tm.blocks) != 2 {
		t.Errorf("got %d blocks, want 2", len(tm.blocks))
	}
}
