package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphjam/internal/assets"
	"github.com/vovakirdan/glyphjam/internal/config"
	"github.com/vovakirdan/glyphjam/internal/core"
	"github.com/vovakirdan/glyphjam/internal/registry"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

// footerHeight is the number of rows below the scene reserved for the
// status line.
const footerHeight = 1

// Options configures a scene model.
type Options struct {
	Resolver *assets.Resolver
	Config   config.Config

	// Scene is the registered scene to open, registry.Start when empty.
	Scene string

	// File opens a scene document from disk instead of a registered scene.
	File string

	// Builtin ignores scene files and plays the embedded copies.
	Builtin bool

	// Watcher, when set, reloads the current document after it changes.
	Watcher *Watcher

	Logger   *log.Logger        // may be nil
	Renderer *lipgloss.Renderer // nil uses the lipgloss default

	ScreenW, ScreenH int // terminal size in cells
}

// menuEntry is a selectable node of the current scene.
type menuEntry struct {
	node   int
	action core.Action
}

// reloadedMsg carries the outcome of re-reading the current document.
type reloadedMsg struct {
	doc *scene.Document
	err error
}

// Model is the Bubble Tea model that presents one scene at a time.
type Model struct {
	opts    Options
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	runtime core.RuntimeConfig

	doc   *scene.Document
	rects []core.RectF
	entry registry.Entry
	menu  []menuEntry

	cursor    int
	status    string
	statusSeq int
	quitting  bool
}

// NewModel loads the starting scene. Missing or broken documents and
// unresolvable fonts are startup errors.
func NewModel(opts Options) (Model, error) {
	if opts.Resolver == nil {
		return Model{}, fmt.Errorf("tui: no asset resolver")
	}
	if err := opts.Config.Display.Validate(); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	if opts.Scene == "" {
		opts.Scene = registry.Start
	}

	m := Model{
		opts: opts,
		keys: NewKeyMap(opts.Config.Bindings),
		help: help.New(),
		runtime: core.RuntimeConfig{
			ViewportW: opts.Config.Display.Width(),
			ViewportH: opts.Config.Display.Height(),
		},
		screen: core.NewScreen(0, 0),
	}
	m.resize(opts.ScreenW, opts.ScreenH)

	var (
		doc *scene.Document
		err error
	)
	if opts.File != "" {
		doc, err = loadFile(opts.File)
	} else {
		doc, err = registry.Load(opts.Resolver, opts.Scene, opts.Builtin)
	}
	if err != nil {
		return Model{}, err
	}
	if err := m.show(doc, false); err != nil {
		return Model{}, err
	}
	return m, nil
}

func loadFile(path string) (*scene.Document, error) {
	return scene.NewLoader(filepath.Dir(path)).LoadFile(path)
}

// Init starts listening for document changes.
func (m Model) Init() tea.Cmd {
	if m.opts.Watcher == nil {
		return nil
	}
	return m.opts.Watcher.Next()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FileChangedMsg:
		return m.handleFileChanged(msg)

	case WatchErrorMsg:
		m.logWarn("watcher error", "err", msg.Err)
		return m, tea.Batch(m.setStatus("watch: "+msg.Err.Error()), m.nextChange())

	case reloadedMsg:
		return m.handleReload(msg)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) resize(w, h int) {
	w, h = core.Max(0, w), core.Max(0, h-footerHeight)
	m.runtime.ScreenW = w
	m.runtime.ScreenH = h
	m.screen.Resize(w, h)
	m.help.Width = w
}

// handleAction applies a mapped key.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionNone:
		return m, nil
	case core.ActionUp, core.ActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case core.ActionDown, core.ActionRight:
		if m.cursor < len(m.menu)-1 {
			m.cursor++
		}
		return m, nil
	case core.ActionSelect:
		if len(m.menu) == 0 {
			return m, nil
		}
		return m.dispatch(m.menu[m.cursor].action)
	}
	return m.dispatch(a)
}

// dispatch runs an action: quit exits, transitions load the next scene
// and back without a transition exits as well.
func (m Model) dispatch(a core.Action) (tea.Model, tea.Cmd) {
	if a == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	next, ok := m.entry.Next(a)
	if !ok {
		if a == core.ActionBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	doc, err := registry.Load(m.opts.Resolver, next, m.opts.Builtin)
	if err == nil {
		err = m.show(doc, false)
	}
	if err != nil {
		m.logWarn("scene transition failed", "from", m.doc.Name, "to", next, "err", err)
		return m, m.setStatus(err.Error())
	}
	m.logDebug("scene transition", "action", a, "scene", next)
	return m, nil
}

func (m Model) handleFileChanged(msg FileChangedMsg) (tea.Model, tea.Cmd) {
	if m.doc.FilePath == "" || !samePath(msg.Path, m.doc.FilePath) {
		return m, m.nextChange()
	}
	path := m.doc.FilePath
	reload := func() tea.Msg {
		doc, err := loadFile(path)
		return reloadedMsg{doc: doc, err: err}
	}
	return m, tea.Batch(reload, m.nextChange())
}

// handleReload swaps in a reloaded document. A rejected document leaves
// the current tree untouched.
func (m Model) handleReload(msg reloadedMsg) (tea.Model, tea.Cmd) {
	err := msg.err
	if err == nil {
		err = m.show(msg.doc, true)
	}
	if err != nil {
		m.logWarn("reload rejected", "scene", m.doc.Name, "err", err)
		return m, m.setStatus("reload rejected: " + err.Error())
	}
	m.logInfo("scene reloaded", "scene", m.doc.Name, "checksum", m.doc.Checksum)
	return m, m.setStatus("reloaded " + m.doc.Name)
}

func (m Model) nextChange() tea.Cmd {
	if m.opts.Watcher == nil {
		return nil
	}
	return m.opts.Watcher.Next()
}

// show resolves doc and makes it the current scene. Nothing changes when
// it fails.
func (m *Model) show(doc *scene.Document, keepCursor bool) error {
	if err := scene.CheckFonts(doc, m.opts.Resolver); err != nil {
		return err
	}
	rects, err := scene.ResolveRects(doc, m.runtime.ViewportW, m.runtime.ViewportH)
	if err != nil {
		return fmt.Errorf("scene %s: %w", doc.Name, err)
	}

	entry, err := registry.Get(doc.Name)
	if err != nil {
		entry = registry.Entry{Name: doc.Name, Title: doc.Title}
	}

	var menu []menuEntry
	for _, item := range m.opts.Config.Bindings.Menu(doc.Name) {
		i, ok := doc.Index(item.Node)
		if !ok {
			m.logWarn("menu item without node", "scene", doc.Name, "node", item.Node)
			continue
		}
		a, ok := core.ParseAction(item.Action)
		if !ok {
			continue
		}
		menu = append(menu, menuEntry{node: i, action: a})
	}

	m.doc = doc
	m.rects = rects
	m.entry = entry
	m.menu = menu
	if !keepCursor {
		m.cursor = 0
	}
	m.cursor = core.Clamp(m.cursor, 0, core.Max(0, len(menu)-1))
	return nil
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return expireStatus(m.statusSeq)
}

// View renders the current scene and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	sx, sy := m.runtime.CellScale()
	Paint(m.screen, m.doc, m.rects, sx, sy, m.selectedNode())

	footer := m.status
	if footer == "" {
		footer = m.help.View(m.keys)
	}
	return RenderScreen(m.screen, m.opts.Renderer) + "\n" + footer
}

func (m Model) selectedNode() int {
	if len(m.menu) == 0 {
		return -1
	}
	return m.menu[m.cursor].node
}

// Scene returns the name of the current scene.
func (m Model) Scene() string {
	return m.doc.Name
}

// Document returns the current scene document.
func (m Model) Document() *scene.Document {
	return m.doc
}

// Rects returns the resolved rectangles of the current scene.
func (m Model) Rects() []core.RectF {
	return m.rects
}

// Selected returns the id of the highlighted menu node, or "".
func (m Model) Selected() string {
	if i := m.selectedNode(); i >= 0 {
		return m.doc.Nodes[i].ID()
	}
	return ""
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

// Screen returns the buffer the last View painted.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// IsQuitting returns true if the user asked to exit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

func (m Model) logDebug(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Debug(msg, keyvals...)
	}
}

func (m Model) logInfo(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Info(msg, keyvals...)
	}
}

func (m Model) logWarn(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, keyvals...)
	}
}

func samePath(a, b string) bool {
	aa, errA := filepath.Abs(a)
	bb, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return aa == bb
}

// Run starts the Bubble Tea program with a model built from opts.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
