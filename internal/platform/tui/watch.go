package tui

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/glyphjam/internal/scene"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// FileChangedMsg reports a scene document that changed on disk.
type FileChangedMsg struct {
	Path string
}

// WatchErrorMsg reports a failure of the underlying file watcher.
type WatchErrorMsg struct {
	Err error
}

// Watcher reports changed scene documents below a set of directories.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	events   chan string
	errors   chan error
	done     chan struct{}
	once     sync.Once
}

// NewWatcher starts watching dirs. Changes to the same file closer than
// debounce to each other are reported once.
func NewWatcher(debounce time.Duration, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w := &Watcher{
		watcher:  fw,
		debounce: debounce,
		events:   make(chan string, 16),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Pending Next commands return nil.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

// Next returns a command that waits for the next change.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case path := <-w.events:
			return FileChangedMsg{Path: path}
		case err := <-w.errors:
			return WatchErrorMsg{Err: err}
		case <-w.done:
			return nil
		}
	}
}

func (w *Watcher) run() {
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if _, ok := scene.FormatForPath(event.Name); !ok {
				continue
			}
			if t, ok := timers[event.Name]; ok {
				t.Reset(w.debounce)
				continue
			}
			path := event.Name
			timers[path] = time.AfterFunc(w.debounce, func() { w.emit(path) })
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) emit(path string) {
	select {
	case w.events <- path:
	case <-w.done:
	}
}
