package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Prathameshp2025/WrapExplorer/internal/config"
	"github.com/Prathameshp2025/WrapExplorer/internal/sizer"
)

func testApp(t *testing.T, rows int) App {
	t.Helper()
	a := NewApp(config.Default())
	m, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	a = m.(App)
	a.browser.SetEntries(testEntries(rows))
	return a
}

// runCmd executes a command the way the runtime would, including
// batches, so a test fails loudly if any of them panics.
func runCmd(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}
}

func TestWatcherEventAfterWatcherGone(t *testing.T) {
	a := testApp(t, 2)
	a.watcher = nil

	// A change event queued by a dead watcher must neither panic nor
	// re-arm a listener on it.
	m, cmd := a.Update(watcherChangedMsg{path: "/elsewhere/file"})
	a = m.(App)
	runCmd(t, cmd)

	// An event touching the current directory still triggers a reload.
	a.path = t.TempDir()
	_, cmd = a.Update(watcherChangedMsg{path: filepath.Join(a.path, "new.txt")})
	if cmd == nil {
		t.Fatal("change under the current directory did not schedule a reload")
	}
	runCmd(t, cmd)
}

func TestStaleRoundResultIsDropped(t *testing.T) {
	a := testApp(t, 2)
	a.roundGen = 2

	stale := sizeResultMsg{gen: 1, result: sizer.Result{Path: "/dir/a", Size: 999}, ok: true}
	m, cmd := a.Update(stale)
	a = m.(App)

	if cmd != nil {
		t.Error("superseded round must not re-arm its listener")
	}
	if e := a.browser.Entries()[0]; e.SizeKnown() {
		t.Errorf("superseded round wrote size %d onto a pending row", e.Size)
	}

	live := sizeResultMsg{gen: 2, result: sizer.Result{Path: "/dir/a", Size: 999}, ok: true}
	m, _ = a.Update(live)
	a = m.(App)
	if e := a.browser.Entries()[0]; !e.SizeKnown() || e.Size != 999 {
		t.Errorf("live round result not applied, size = %d", e.Size)
	}
}

func TestMarqueeEndsOnReleaseWithoutButton(t *testing.T) {
	a := testApp(t, 5)

	steps := []tea.MouseMsg{
		{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
	}
	for _, msg := range steps {
		m, _ := a.Update(msg)
		a = m.(App)
	}
	if n := len(a.browser.Selected()); n != 2 {
		t.Fatalf("drag over two rows selected %d", n)
	}

	// Non-SGR tracking reports the release with no button attached.
	m, _ := a.Update(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	a = m.(App)
	if a.marquee.Active() {
		t.Fatal("release with ButtonNone did not end the drag")
	}

	m, _ = a.Update(tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	a = m.(App)
	if n := len(a.browser.Selected()); n != 2 {
		t.Errorf("motion after release changed the selection to %d rows", n)
	}
}
