// Package dashboard implements the live air-quality terminal dashboard:
// metric cards for the newest reading and sparkline charts over the series.
package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/02loveslollipop/chamber-air-dashboard/internal/poller"
	"github.com/02loveslollipop/chamber-air-dashboard/services/watcher/internal/layout"
)

// ── Color palette ────────────────────────────────────────────────────

var (
	colorTitleFg = lipgloss.Color("51")
	colorAccent  = lipgloss.Color("141")
	colorBorder  = lipgloss.Color("62")
	colorLabel   = lipgloss.Color("252")
	colorDim     = lipgloss.Color("240")
	colorCrit    = lipgloss.Color("196")
	colorPrimary = lipgloss.Color("203")
)

// ── Messages ─────────────────────────────────────────────────────────

// SnapshotMsg delivers a new poller snapshot to the model.
type SnapshotMsg poller.Snapshot

// ── Model ────────────────────────────────────────────────────────────

// Model is the BubbleTea model for the dashboard. It only reads snapshots;
// the poller owns the series.
type Model struct {
	layout  layout.Layout
	snap    poller.Snapshot
	refresh func()
	width   int
	height  int
	scroll  int
}

// New creates the dashboard model. refresh is invoked on the "r" key and
// may be nil.
func New(l layout.Layout, initial poller.Snapshot, refresh func()) Model {
	if refresh == nil {
		refresh = func() {}
	}
	return Model{
		layout:  l,
		snap:    initial,
		refresh: refresh,
	}
}

// Snapshot returns the snapshot currently displayed.
func (m Model) Snapshot() poller.Snapshot {
	return m.snap
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.refresh()
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		case "home":
			m.scroll = 0
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SnapshotMsg:
		m.snap = poller.Snapshot(msg)
	}

	return m, nil
}
