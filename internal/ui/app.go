package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termim/qsquaremap/internal/core"
	"github.com/termim/qsquaremap/internal/logging"
	"github.com/termim/qsquaremap/internal/model"
	"github.com/termim/qsquaremap/pkg/squaremap"
)

const doubleClickWindow = 400 * time.Millisecond

// sessionEventMsg carries one session event plus the channel to keep
// listening on.
type sessionEventMsg struct {
	event core.Event
	ch    <-chan core.Event
}

// scanStartMsg kicks off the scan after the first render.
type scanStartMsg struct{}

// App is the bubbletea model hosting the square map.
type App struct {
	session *core.Session
	panel   *MapPanel
	keys    KeyMap
	spin    spinner.Model

	root     *model.FSNode
	scanning bool
	cached   bool
	dirty    bool
	err      error

	status    string
	statusSel string

	progressFiles int64
	progressBytes int64

	lastClickAt  time.Time
	lastClickPos squaremap.Point

	width  int
	height int
}

// NewApp creates the application for the given session.
func NewApp(session *core.Session, opts squaremap.Options) (*App, error) {
	panel, err := NewMapPanel(opts)
	if err != nil {
		return nil, err
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ScanningStyle

	a := &App{
		session:  session,
		panel:    panel,
		keys:     DefaultKeyMap(),
		spin:     sp,
		scanning: true,
	}
	panel.SetFocused(true)
	a.installHooks()
	return a, nil
}

// installHooks wires widget notifications into the status bar.
func (a *App) installHooks() {
	w := a.panel.Widget()
	w.SetLogger(logging.Debug)
	w.OnSelect = func(node *model.FSNode, at *squaremap.Point, _ *squaremap.Widget[*model.FSNode]) {
		a.statusSel = fmt.Sprintf("%s  %s  %s",
			node.Path, FormatSize(node.TotalSize()), model.Kind(node))
	}
	w.OnHighlight = func(node *model.FSNode, at *squaremap.Point, _ *squaremap.Widget[*model.FSNode]) {
		a.status = fmt.Sprintf("%s (%s)", node.Path, FormatSize(node.TotalSize()))
	}
	w.OnActivate = func(node *model.FSNode, at *squaremap.Point, _ *squaremap.Widget[*model.FSNode]) {
		if node.IsDir && len(node.Children) > 0 {
			a.panel.SetRoot(node)
			a.status = "zoomed into " + node.Path
		} else {
			a.status = "activated " + node.Path
		}
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("qsquaremap"),
		a.spin.Tick,
		func() tea.Msg { return scanStartMsg{} },
	)
}

func listenSession(ch <-chan core.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return sessionEventMsg{event: ev, ch: ch}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case scanStartMsg:
		return a, listenSession(a.session.StartScan(context.Background()))

	case sessionEventMsg:
		return a.handleSessionEvent(msg)

	case spinner.TickMsg:
		if !a.scanning {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) handleSessionEvent(msg sessionEventMsg) (tea.Model, tea.Cmd) {
	next := listenSession(msg.ch)

	switch ev := msg.event.(type) {
	case core.ScanStartedEvent:
		a.scanning = true
		a.err = nil
		return a, next

	case core.ScanProgressEvent:
		a.progressFiles = ev.FilesScanned
		a.progressBytes = ev.BytesFound
		return a, next

	case core.CachedTreeEvent:
		// Show stale data while the fresh scan runs.
		if a.root == nil {
			a.root = ev.Root
			a.cached = true
			a.panel.SetRoot(ev.Root)
			a.updateLayout()
		}
		return a, next

	case core.ScanCompletedEvent:
		if ev.Err != nil {
			a.scanning = false
			a.err = ev.Err
			return a, next
		}
		a.scanning = false
		a.cached = false
		a.dirty = false
		a.statusSel = ""
		a.root = ev.Root
		a.panel.SetRoot(ev.Root)
		a.updateLayout()

		watchCh, err := a.session.StartWatching()
		if err != nil {
			logging.Debug.Printf("start watcher: %v", err)
			return a, next
		}
		return a, tea.Batch(next, listenSession(watchCh))

	case core.ChangeDetectedEvent:
		a.dirty = true
		return a, next

	case core.ErrorEvent:
		a.status = ev.Err.Error()
		return a, next
	}

	return a, next
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.session.Stop()
		return a, tea.Quit

	case key.Matches(msg, a.keys.Rescan):
		if a.scanning {
			return a, nil
		}
		a.scanning = true
		a.progressFiles = 0
		a.progressBytes = 0
		return a, tea.Batch(
			a.spin.Tick,
			listenSession(a.session.StartScan(context.Background())),
		)
	}

	if k := a.keys.navKey(msg.String()); k != squaremap.KeyNone {
		a.panel.HandleKey(k)
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Map terminal cells to panel-local drawing coordinates: one line of
	// header above the panel, one cell of panel border on each side.
	x := msg.X - 1
	y := msg.Y - headerHeight - 1

	switch msg.Action {
	case tea.MouseActionMotion:
		a.panel.MouseMove(x, y)

	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return a, nil
		}
		at := squaremap.Point{X: float64(x), Y: float64(y)}
		now := time.Now()
		if now.Sub(a.lastClickAt) < doubleClickWindow && at == a.lastClickPos {
			a.panel.DoubleClick(x, y)
			a.lastClickAt = time.Time{}
		} else {
			a.panel.MouseRelease(x, y)
			a.lastClickAt = now
			a.lastClickPos = at
		}
	}
	return a, nil
}

const headerHeight = 1

func (a *App) updateLayout() {
	panelHeight := a.height - headerHeight - 2 // status + help lines
	if panelHeight < 3 {
		panelHeight = 3
	}
	a.panel.SetSize(a.width, panelHeight)
}

func (a *App) viewHeader() string {
	left := "qsquaremap " + a.session.Path()

	var right string
	if total, free, err := a.session.DiskUsage(); err == nil {
		right = fmt.Sprintf("%s free of %s", FormatSize(free), FormatSize(total))
	}
	if rec, ok := a.session.LastScan(); ok && a.cached {
		right = fmt.Sprintf("cached %s  %s", rec.When.Format("15:04:05"), right)
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return HeaderStyle.Width(a.width).Render(
		left + lipgloss.NewStyle().Width(gap).Render("") + right)
}

func (a *App) viewStatus() string {
	switch {
	case a.err != nil:
		return ErrorStyle.Render("error: " + a.err.Error())
	case a.scanning:
		return StatusStyle.Render(fmt.Sprintf("%s scanning  %d files  %s",
			a.spin.View(), a.progressFiles, FormatSize(a.progressBytes)))
	case a.dirty:
		return StatusStyle.Render("tree changed on disk, press r to rescan")
	case a.statusSel != "":
		return StatusStyle.Render(a.statusSel)
	default:
		return StatusStyle.Render(a.status)
	}
}

func (a *App) viewHelp() string {
	var parts []string
	for _, b := range a.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	line := ""
	for i, p := range parts {
		if i > 0 {
			line += "  "
		}
		line += p
	}
	return StatusStyle.Width(a.width).Render(line)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var body string
	if a.root == nil {
		msg := fmt.Sprintf("%s Scanning %s  %d files  %s",
			a.spin.View(), a.session.Path(), a.progressFiles, FormatSize(a.progressBytes))
		if a.err != nil {
			msg = ErrorStyle.Render("error: " + a.err.Error())
		}
		panelHeight := a.height - headerHeight - 2
		body = lipgloss.Place(a.width, panelHeight, lipgloss.Center, lipgloss.Center, msg)
	} else {
		body = a.panel.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewHeader(),
		body,
		a.viewStatus(),
		a.viewHelp(),
	)
}
