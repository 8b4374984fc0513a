package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Prathameshp2025/WrapExplorer/internal/config"
	"github.com/Prathameshp2025/WrapExplorer/internal/listing"
	"github.com/Prathameshp2025/WrapExplorer/internal/logging"
	"github.com/Prathameshp2025/WrapExplorer/internal/model"
	"github.com/Prathameshp2025/WrapExplorer/internal/selection"
	"github.com/Prathameshp2025/WrapExplorer/internal/sizer"
	"github.com/Prathameshp2025/WrapExplorer/internal/watcher"
)

const statusTimeout = 4 * time.Second

// Layout constants
const (
	headerHeight  = 2
	helpBarHeight = 1
	// content origin inside the browser panel, relative to its top-left
	browserContentX = 2 // border + padding
	browserContentY = 1 // border
)

// listingLoadedMsg carries the result of a directory enumeration
type listingLoadedMsg struct {
	gen     int
	path    string
	entries []*model.Entry
	err     error
}

// sizeResultMsg carries one folder-size result; ok=false means the
// round's channel closed.
type sizeResultMsg struct {
	gen    int
	result sizer.Result
	ok     bool
}

// navigateMsg asks Update to load a directory. Loading always goes
// through Update so that round bookkeeping happens on the live model.
type navigateMsg struct {
	path string
}

func navigateTo(path string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{path: path}
	}
}

// watcherChangedMsg is sent when the watched directory changes
type watcherChangedMsg struct {
	path string
}

// statusExpiredMsg clears a transient status message
type statusExpiredMsg struct {
	id int
}

// App is the main application model
type App struct {
	// Components
	header        Header
	browser       BrowserPanel
	menu          ContextMenu
	driveSelector DriveSelector
	treemap       TreemapOverlay
	help          HelpOverlay

	keys      KeyMap
	cfg       config.Config
	scheduler *sizer.Scheduler

	// Data
	drives []model.Drive
	path   string

	// Size-computation round. Exactly one round is live per loaded
	// directory; loading a new one cancels the previous context
	// before enumeration starts.
	roundGen    int
	roundCancel context.CancelFunc
	roundCh     <-chan sizer.Result

	// Marquee drag state
	marquee     selection.Region
	marqueeBase map[string]struct{}

	watcher *watcher.Watcher

	// Transient status line
	status    string
	statusErr bool
	statusID  int

	width  int
	height int
}

// NewApp creates the application model
func NewApp(cfg config.Config) App {
	drives, _ := model.GetDrives()

	start := cfg.StartPath
	if start == "" && len(drives) > 0 {
		start = drives[0].Path
	}
	if start == "" {
		start, _ = os.UserHomeDir()
	}

	app := App{
		header:        NewHeader(drives),
		browser:       NewBrowserPanel(),
		menu:          NewContextMenu(),
		driveSelector: NewDriveSelector(drives),
		treemap:       NewTreemapOverlay(),
		help:          NewHelpOverlay(),
		keys:          DefaultKeyMap(),
		cfg:           cfg,
		scheduler:     sizer.NewScheduler(cfg.Workers),
		drives:        drives,
		path:          start,
		marqueeBase:   make(map[string]struct{}),
	}

	for i, d := range drives {
		if d.Path == start {
			app.header.SetSelected(i)
			app.driveSelector.selected = i
			break
		}
	}

	return app
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("WrapExplorer"),
		navigateTo(a.path),
	)
}

// loadDirectory supersedes the in-flight size round and enumerates
// path in the background. Must be called from Update so that
// cancellation happens before the new enumeration begins.
func (a *App) loadDirectory(path string) tea.Cmd {
	if a.roundCancel != nil {
		a.roundCancel()
		a.roundCancel = nil
	}
	a.roundGen++
	gen := a.roundGen

	return func() tea.Msg {
		logging.Debug.Printf("loading %s (round %d)", path, gen)
		entries, err := listing.List(path)
		return listingLoadedMsg{gen: gen, path: path, entries: entries, err: err}
	}
}

// startRound begins size computation for the listing's folders
func (a *App) startRound(folders []*model.Entry) tea.Cmd {
	if len(folders) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.roundCancel = cancel
	a.roundCh = a.scheduler.Schedule(ctx, folders)
	return listenForSizes(a.roundGen, a.roundCh)
}

// listenForSizes waits for the next result of a round
func listenForSizes(gen int, ch <-chan sizer.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		return sizeResultMsg{gen: gen, result: r, ok: ok}
	}
}

// restartWatcher points the directory watcher at path
func (a *App) restartWatcher(path string) tea.Cmd {
	if a.watcher != nil {
		_ = a.watcher.Stop()
		a.watcher = nil
	}

	w, err := watcher.New(path)
	if err != nil {
		logging.Debug.Printf("watcher for %s: %v", path, err)
		return nil
	}
	a.watcher = w
	w.Start()
	return listenForWatcher(w)
}

// listenForWatcher waits for the next change notification
func listenForWatcher(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-w.Events()
		if !ok {
			return nil
		}
		return watcherChangedMsg{path: path}
	}
}

// setStatus shows a transient message on the status line
func (a *App) setStatus(text string, isErr bool) tea.Cmd {
	a.status = text
	a.statusErr = isErr
	a.statusID++
	id := a.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case navigateMsg:
		return a, a.loadDirectory(msg.path)

	case listingLoadedMsg:
		if msg.gen != a.roundGen {
			// A newer load superseded this one while enumerating.
			return a, nil
		}
		if msg.err != nil {
			logging.Debug.Printf("listing failed: %v", msg.err)
			return a, a.setStatus(listingErrorText(msg.err), true)
		}

		a.path = msg.path
		a.header.SetPath(msg.path)
		a.browser.SetEntries(msg.entries)
		a.treemap.SetEntries(msg.entries)
		a.header.SetPending(a.browser.PendingSizes())
		a.updateLayout()

		return a, tea.Batch(
			a.startRound(listing.Folders(msg.entries)),
			a.restartWatcher(msg.path),
		)

	case sizeResultMsg:
		if msg.gen != a.roundGen {
			// Stale round; its channel drains and closes on its own.
			return a, nil
		}
		if !msg.ok {
			// Round complete: anything still pending failed outright
			// and reads as "computed, empty/denied".
			for _, e := range a.browser.Entries() {
				if e.IsFolder() && !e.SizeKnown() {
					e.Size = 0
				}
			}
			a.header.SetPending(0)
			a.roundCancel = nil
			a.treemap.SetEntries(a.browser.Entries())
			return a, nil
		}

		a.browser.ApplySize(msg.result.Path, msg.result.Size)
		a.header.SetPending(a.browser.PendingSizes())
		return a, listenForSizes(msg.gen, a.roundCh)

	case watcherChangedMsg:
		// The watcher can be gone by the time a queued event arrives,
		// e.g. when restarting it for the new directory failed.
		var cmds []tea.Cmd
		if a.watcher != nil {
			cmds = append(cmds, listenForWatcher(a.watcher))
		}
		if msg.path == a.path || filepath.Dir(msg.path) == a.path {
			cmds = append(cmds, a.loadDirectory(a.path))
		}
		return a, tea.Batch(cmds...)

	case statusExpiredMsg:
		if msg.id == a.statusID {
			a.status = ""
		}
		return a, nil
	}

	return a, nil
}

// updateLayout propagates the window size to all components
func (a *App) updateLayout() {
	browserHeight := a.height - headerHeight - helpBarHeight - 1
	if browserHeight < 0 {
		browserHeight = 0
	}

	a.header.SetWidth(a.width)
	a.browser.SetSize(a.width, browserHeight)
	a.menu.SetSize(a.width, a.height)
	a.driveSelector.SetSize(a.width, a.height)
	a.treemap.SetSize(a.width, a.height)
	a.help.SetSize(a.width, a.height)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays capture input while visible
	if a.help.IsVisible() {
		if key.Matches(msg, a.keys.Cancel, a.keys.Help, a.keys.Quit) {
			a.help.SetVisible(false)
		}
		return a, nil
	}

	if a.driveSelector.IsVisible() {
		switch {
		case key.Matches(msg, a.keys.Up):
			a.driveSelector.MoveUp()
		case key.Matches(msg, a.keys.Down):
			a.driveSelector.MoveDown()
		case key.Matches(msg, a.keys.Enter):
			a.driveSelector.SetVisible(false)
			idx := a.driveSelector.Selected()
			if idx >= 0 && idx < len(a.drives) {
				a.header.SetSelected(idx)
				return a, a.loadDirectory(a.drives[idx].Path)
			}
		case key.Matches(msg, a.keys.Cancel, a.keys.SelectDrive, a.keys.Quit):
			a.driveSelector.SetVisible(false)
		}
		return a, nil
	}

	if a.menu.IsVisible() {
		switch {
		case key.Matches(msg, a.keys.Up):
			a.menu.MoveUp()
		case key.Matches(msg, a.keys.Down):
			a.menu.MoveDown()
		case key.Matches(msg, a.keys.Enter):
			action := a.menu.Action()
			target := a.menu.Target()
			a.menu.Close()
			return a.executeMenuAction(action, target)
		case key.Matches(msg, a.keys.Cancel, a.keys.Menu, a.keys.Quit):
			a.menu.Close()
		}
		return a, nil
	}

	if a.treemap.IsVisible() {
		if key.Matches(msg, a.keys.Cancel, a.keys.Treemap, a.keys.Quit) {
			a.treemap.SetVisible(false)
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, a.shutdown()
	case key.Matches(msg, a.keys.Up):
		a.browser.MoveUp()
	case key.Matches(msg, a.keys.Down):
		a.browser.MoveDown()
	case key.Matches(msg, a.keys.Top):
		a.browser.GoToTop()
	case key.Matches(msg, a.keys.Bottom):
		a.browser.GoToBottom()
	case key.Matches(msg, a.keys.PageUp):
		a.browser.PageUp()
	case key.Matches(msg, a.keys.PageDown):
		a.browser.PageDown()
	case key.Matches(msg, a.keys.Enter):
		if e := a.browser.CursorEntry(); e != nil {
			return a.openEntry(e)
		}
	case key.Matches(msg, a.keys.Back):
		parent := filepath.Dir(a.path)
		if parent != a.path {
			return a, a.loadDirectory(parent)
		}
	case key.Matches(msg, a.keys.Toggle):
		if e := a.browser.CursorEntry(); e != nil {
			a.browser.ToggleSelect(e.Path)
		}
	case key.Matches(msg, a.keys.Cancel):
		a.browser.ClearSelection()
	case key.Matches(msg, a.keys.Menu):
		if e := a.browser.CursorEntry(); e != nil {
			a.menu.Open(e)
		}
	case key.Matches(msg, a.keys.Treemap):
		a.treemap.SetEntries(a.browser.Entries())
		a.treemap.Toggle()
	case key.Matches(msg, a.keys.SelectDrive):
		a.driveSelector.SetVisible(true)
	case key.Matches(msg, a.keys.Refresh):
		return a, a.loadDirectory(a.path)
	case key.Matches(msg, a.keys.Help):
		a.help.SetVisible(true)
	}

	return a, nil
}

// shutdown releases background resources before quitting
func (a *App) shutdown() tea.Cmd {
	if a.roundCancel != nil {
		a.roundCancel()
		a.roundCancel = nil
	}
	if a.watcher != nil {
		_ = a.watcher.Stop()
		a.watcher = nil
	}
	return tea.Quit
}

// openEntry navigates into folders and launches files
func (a App) openEntry(e *model.Entry) (tea.Model, tea.Cmd) {
	if e.IsFolder() {
		return a, a.loadDirectory(e.Path)
	}
	if err := openWithDefaultHandler(e.Path); err != nil {
		return a, a.setStatus(fmt.Sprintf("Could not open %s: %v", e.Name, err), true)
	}
	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.help.IsVisible() || a.driveSelector.IsVisible() ||
		a.menu.IsVisible() || a.treemap.IsVisible() {
		return a, nil
	}

	// Wheel scrolling works anywhere
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.browser.Scroll(-3)
			return a, nil
		case tea.MouseButtonWheelDown:
			a.browser.Scroll(3)
			return a, nil
		}
	}

	cx, cy := a.contentCoords(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			a.marquee.Begin(selection.Point{X: float64(cx), Y: float64(cy)}, msg.Ctrl)
			a.marqueeBase = copySelection(a.browser.Selected())
			if idx := a.browser.RowAt(cy); idx >= 0 {
				a.browser.SetCursor(idx)
			}
			a.applyMarquee()
		case tea.MouseButtonRight:
			if idx := a.browser.RowAt(cy); idx >= 0 {
				a.browser.SetCursor(idx)
				if e := a.browser.CursorEntry(); e != nil {
					a.menu.Open(e)
				}
			}
		}

	case tea.MouseActionMotion:
		if a.marquee.Active() {
			a.marquee.Update(selection.Point{X: float64(cx), Y: float64(cy)})
			a.applyMarquee()
		}

	case tea.MouseActionRelease:
		// Some terminals report releases as ButtonNone, so any release
		// ends an active drag.
		if a.marquee.Active() {
			a.marquee.Update(selection.Point{X: float64(cx), Y: float64(cy)})
			a.applyMarquee()
			a.marquee.End()
		}
	}

	return a, nil
}

// contentCoords converts screen coordinates to browser-content coordinates
func (a *App) contentCoords(x, y int) (int, int) {
	return x - browserContentX, y - headerHeight - browserContentY
}

// applyMarquee recomputes the selection from the current drag rectangle
func (a *App) applyMarquee() {
	rect := a.marquee.Rect()
	covered := selection.Covered(rect, a.browser.RowBoxes())
	a.browser.SetSelected(selection.Resolve(a.marqueeBase, covered, a.marquee.Additive()))
}

func copySelection(sel map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(sel))
	for k := range sel {
		out[k] = struct{}{}
	}
	return out
}

func (a App) executeMenuAction(action MenuAction, target *model.Entry) (tea.Model, tea.Cmd) {
	if target == nil {
		return a, nil
	}

	switch action {
	case MenuOpen:
		return a.openEntry(target)

	case MenuReveal:
		if err := revealInFileManager(target.Path); err != nil {
			return a, a.setStatus(fmt.Sprintf("Could not reveal %s: %v", target.Name, err), true)
		}

	case MenuCopyPath:
		text := target.Path
		if sel := a.browser.Selected(); len(sel) > 1 {
			if _, ok := sel[target.Path]; ok {
				paths := make([]string, 0, len(sel))
				for _, e := range a.browser.Entries() {
					if _, ok := sel[e.Path]; ok {
						paths = append(paths, e.Path)
					}
				}
				text = strings.Join(paths, "\n")
			}
		}
		if err := copyToClipboard(text); err != nil {
			return a, a.setStatus(fmt.Sprintf("Clipboard: %v", err), true)
		}
		return a, a.setStatus("Path copied", false)

	case MenuCopyName:
		if err := copyToClipboard(target.Name); err != nil {
			return a, a.setStatus(fmt.Sprintf("Clipboard: %v", err), true)
		}
		return a, a.setStatus("Name copied", false)
	}

	return a, nil
}

// listingErrorText maps listing errors to user-facing messages
func listingErrorText(err error) string {
	switch {
	case errors.Is(err, listing.ErrNotFound):
		return "Folder no longer exists"
	case errors.Is(err, listing.ErrAccessDenied):
		return "Access denied"
	default:
		return fmt.Sprintf("Could not read folder: %v", err)
	}
}

// statusLine renders the bottom info line
func (a App) statusLine() string {
	if a.status != "" {
		if a.statusErr {
			return StatusErrorStyle.Render(a.status)
		}
		return StatusInfoStyle.Render(a.status)
	}

	e := a.browser.CursorEntry()
	if e == nil {
		return StatusInfoStyle.Render(fmt.Sprintf("%d items", len(a.browser.Entries())))
	}

	parts := []string{e.Name}
	if e.SizeKnown() {
		parts = append(parts, FormatSize(e.Size))
	} else {
		parts = append(parts, "computing")
	}
	parts = append(parts, e.TypeLabel)
	if mime := detectMIME(e); mime != "" {
		parts = append(parts, mime)
	}
	if n := len(a.browser.Selected()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	return StatusInfoStyle.Render(strings.Join(parts, "  "))
}

// View implements tea.Model
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "loading"
	}

	if a.help.IsVisible() {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, a.help.View())
	}
	if a.driveSelector.IsVisible() {
		return a.driveSelector.View()
	}
	if a.menu.IsVisible() {
		return a.menu.View()
	}
	if a.treemap.IsVisible() {
		return a.treemap.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.header.View(),
		a.browser.View(),
		a.statusLine(),
		HelpBar(a.width),
	)
}
