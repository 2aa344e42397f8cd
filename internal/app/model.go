package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gersbach/lsg/internal/display"
	"github.com/gersbach/lsg/internal/gitstatus"
	"github.com/gersbach/lsg/internal/render"
)

// Messages exchanged with the bubbletea runtime.
type (
	contentMsg struct {
		listing string
		root    string
	}
	listErrMsg struct{ err error }
	fsEventMsg struct{}
)

// Model is the watch-mode program. Every refresh rebuilds a fresh
// status cache (each cache stays build-once-immutable) and re-renders
// the listing into the viewport.
type Model struct {
	dir      string
	opts     display.Options
	renderer *render.Renderer
	backend  gitstatus.Backend
	watcher  *watchService

	viewport viewport.Model
	ready    bool
	quitting bool
	err      error
	watching bool
}

// NewModel prepares the watch-mode program for one directory.
func NewModel(dir string, renderer *render.Renderer, backend gitstatus.Backend, opts display.Options) *Model {
	return &Model{
		dir:      dir,
		opts:     opts,
		renderer: renderer,
		backend:  backend,
		watcher:  newWatchService(),
	}
}

// Close releases the filesystem watcher.
func (m *Model) Close() {
	m.watcher.Stop()
}

// Err returns the terminal error, if the program stopped on one.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.refreshCmd()
}

// refreshCmd rebuilds the cache and re-renders off the UI goroutine.
func (m *Model) refreshCmd() tea.Cmd {
	dir, opts, renderer, backend := m.dir, m.opts, m.renderer, m.backend
	return func() tea.Msg {
		cache := gitstatus.New(context.Background(), dir, backend)
		lister := display.NewLister(renderer, cache, opts)
		listing, err := lister.RenderDir(dir)
		if err != nil {
			return listErrMsg{err}
		}
		return contentMsg{listing: listing, root: cache.Root()}
	}
}

// waitForChange blocks on the watcher's coalesced event stream.
func (m *Model) waitForChange() tea.Cmd {
	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return fsEventMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, m.refreshCmd()
		}

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		headerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		return m, m.refreshCmd()

	case contentMsg:
		m.viewport.SetContent(msg.listing)
		var cmd tea.Cmd
		if !m.watching {
			// First render: arm the watcher now that we know whether a
			// repository is behind the listing.
			if err := m.watcher.Start(m.dir, msg.root); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.watching = true
			cmd = m.waitForChange()
		}
		return m, cmd

	case listErrMsg:
		m.err = msg.err
		return m, tea.Quit

	case fsEventMsg:
		cmds := []tea.Cmd{m.waitForChange()}
		if m.watcher.ShouldRefresh(time.Now()) {
			cmds = append(cmds, m.refreshCmd())
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}
	header := fmt.Sprintf("lsg --watch %s  (q to quit, r to refresh)\n\n", m.dir)
	return header + m.viewport.View()
}
