package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glyphjam"
	"github.com/vovakirdan/glyphjam/internal/assets"
	"github.com/vovakirdan/glyphjam/internal/config"
	"github.com/vovakirdan/glyphjam/internal/registry"
)

func testOptions(root string) Options {
	return Options{
		Resolver: assets.NewResolver(root, glyphjam.Assets()),
		Config: config.Config{
			Display:  config.DefaultDisplayConfig(),
			Bindings: config.DefaultBindingsConfig(),
		},
		Renderer: lipgloss.NewRenderer(&bytes.Buffer{}),
		ScreenW:  80,
		ScreenH:  25,
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(testOptions(t.TempDir()))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return updated, cmd
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestModelStartsOnMainMenu(t *testing.T) {
	m := newTestModel(t)

	if m.Scene() != registry.MainMenu {
		t.Errorf("Scene() = %q, expected %q", m.Scene(), registry.MainMenu)
	}
	if m.Selected() != "menu_selection_play_game" {
		t.Errorf("Selected() = %q", m.Selected())
	}
	if len(m.Rects()) != m.Document().Len() {
		t.Errorf("%d rects for %d nodes", len(m.Rects()), m.Document().Len())
	}

	view := m.View()
	for _, want := range []string{"GLYPH JAM", "Play game (P)", "Quit (Q)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
	if w, h := m.Screen().Width(), m.Screen().Height(); w != 80 || h != 24 {
		t.Errorf("scene area = %dx%d, expected 80x24 plus the footer", w, h)
	}
}

func TestModelCursorIsClamped(t *testing.T) {
	m := newTestModel(t)
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	m, _ = send(t, m, down)
	if m.Selected() != "menu_selection_quit" {
		t.Fatalf("after down Selected() = %q", m.Selected())
	}
	m, _ = send(t, m, down)
	if m.Selected() != "menu_selection_quit" {
		t.Errorf("cursor moved past the last item: %q", m.Selected())
	}
	m, _ = send(t, m, up)
	m, _ = send(t, m, up)
	if m.Selected() != "menu_selection_play_game" {
		t.Errorf("cursor moved before the first item: %q", m.Selected())
	}
}

func TestModelTransitions(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runes("p"))
	if m.Scene() != registry.NothingYet {
		t.Fatalf("p should open %s, got %s", registry.NothingYet, m.Scene())
	}
	if m.Selected() != "nothing_back" {
		t.Errorf("Selected() = %q, expected nothing_back", m.Selected())
	}
	if !strings.Contains(m.View(), "There's nothing else yet") {
		t.Error("placeholder text is not drawn")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Scene() != registry.MainMenu || m.IsQuitting() {
		t.Fatalf("esc on the placeholder should go back, scene %s quitting %v", m.Scene(), m.IsQuitting())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Scene() != registry.NothingYet {
		t.Errorf("enter on the play item should open %s, got %s", registry.NothingYet, m.Scene())
	}

	m, _ = send(t, m, runes("b"))
	if m.Scene() != registry.MainMenu {
		t.Errorf("b should return to the main menu, got %s", m.Scene())
	}
	if m.Selected() != "menu_selection_play_game" {
		t.Errorf("cursor should reset after a transition, got %q", m.Selected())
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{"q", []tea.KeyMsg{runes("q")}},
		{"ctrl+c", []tea.KeyMsg{{Type: tea.KeyCtrlC}}},
		{"esc on main menu", []tea.KeyMsg{{Type: tea.KeyEsc}}},
		{"select quit item", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}},
		{"q on placeholder", []tea.KeyMsg{runes("p"), runes("q")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = send(t, m, k)
			}
			if !m.IsQuitting() {
				t.Fatal("model should be quitting")
			}
			if cmd == nil || cmd() != (tea.QuitMsg{}) {
				t.Error("expected tea.Quit")
			}
			if m.View() != "" {
				t.Error("quitting model should render nothing")
			}
		})
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, runes("z"))
	if cmd != nil || m.IsQuitting() || m.Scene() != registry.MainMenu {
		t.Error("unbound key should do nothing")
	}
}

func TestModelMissingFontFailsStartup(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, assets.Dir, "ui", "mainmenu.yaml"), `
scene: main_menu
root:
  label:
    transform: {id: title, anchor: middle, width: 100, height: 20}
    text:
      text: hello
      font: {kind: file, path: fonts/missing.ttf, format: ttf}
      color: [1, 1, 1, 1]
`)

	_, err := NewModel(testOptions(root))
	if !errors.Is(err, assets.ErrNotFound) {
		t.Fatalf("expected assets.ErrNotFound, got %v", err)
	}
}

func TestModelBrokenTransitionKeepsScene(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, assets.Dir, "ui", "nothing_yet.yaml"), "scene: nothing_yet\n")

	m, err := NewModel(testOptions(root))
	if err != nil {
		t.Fatal(err)
	}

	m, cmd := send(t, m, runes("p"))
	if m.Scene() != registry.MainMenu {
		t.Errorf("failed transition should keep the main menu, got %s", m.Scene())
	}
	if m.Status() == "" || cmd == nil {
		t.Fatal("failed transition should set a status line")
	}
	if !strings.Contains(m.View(), m.Status()) {
		t.Error("status line should replace the help footer")
	}

	m, _ = send(t, m, statusExpiredMsg{seq: m.statusSeq - 1})
	if m.Status() == "" {
		t.Error("stale expiry should not clear a newer status")
	}
	m, _ = send(t, m, statusExpiredMsg{seq: m.statusSeq})
	if m.Status() != "" {
		t.Errorf("status should clear, got %q", m.Status())
	}
}

const customScene = `
scene: custom
root:
  container:
    transform: {id: box, anchor: middle, width: %s, height: 100}
    background: [0.2, 0.2, 0.2, 1]
`

func TestModelReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, strings.Replace(customScene, "%s", "200", 1))

	opts := testOptions(t.TempDir())
	opts.File = path
	m, err := NewModel(opts)
	if err != nil {
		t.Fatal(err)
	}
	if m.Scene() != "custom" {
		t.Fatalf("Scene() = %q", m.Scene())
	}
	before := m.Rects()[0]

	// Other files are ignored
	m, cmd := send(t, m, FileChangedMsg{Path: filepath.Join(dir, "other.yaml")})
	if cmd != nil {
		t.Error("unrelated file change should not trigger a reload")
	}

	reload := func(m Model) Model {
		t.Helper()
		m, cmd := send(t, m, FileChangedMsg{Path: path})
		msgs := collect(cmd)
		if len(msgs) != 1 {
			t.Fatalf("expected one reload message, got %v", msgs)
		}
		m, _ = send(t, m, msgs[0])
		return m
	}

	writeFile(t, path, "scene: custom\nroot: {container: {transform: {id: box}}}\n")
	m = reload(m)
	if !strings.HasPrefix(m.Status(), "reload rejected") {
		t.Errorf("Status() = %q, expected a rejected reload", m.Status())
	}
	if m.Rects()[0] != before {
		t.Error("rejected reload must keep the previous tree")
	}

	writeFile(t, path, strings.Replace(customScene, "%s", "400", 1))
	m = reload(m)
	if m.Status() != "reloaded custom" {
		t.Errorf("Status() = %q", m.Status())
	}
	if got := m.Rects()[0]; got.W != 400 || got.X != 440 {
		t.Errorf("reloaded rect = %+v, expected width 400 centered", got)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 13})
	m.View()

	if w, h := m.Screen().Width(), m.Screen().Height(); w != 40 || h != 12 {
		t.Errorf("scene area = %dx%d, expected 40x12", w, h)
	}
	if m.Rects()[0].W != 1280 {
		t.Error("resizing the terminal must not change the logical layout")
	}
}
