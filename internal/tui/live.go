// Package tui renders a live terminal view of a running ensemble: volume
// trace, box dimensions and the barostat's tuning state.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mdsim/internal/barostat"
	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/platform"
)

const historyCapacity = 240

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Snapshot is one tick's worth of display state.
type Snapshot struct {
	Step        int
	Volume      float64
	Lengths     md.Vec3
	VolumeScale [3]float64
	Attempted   int
	Accepted    int
}

// Feed forwards engine ticks into the TUI as snapshots. It drops frames
// rather than blocking the simulation.
type Feed struct {
	ctrl *barostat.Controller
	ch   chan Snapshot
}

func NewFeed(ctrl *barostat.Controller) *Feed {
	return &Feed{ctrl: ctrl, ch: make(chan Snapshot, 64)}
}

func (f *Feed) OnTick(step int, c platform.Context) {
	a, b, cv := c.PeriodicBoxVectors()
	box := md.Box{a, b, cv}
	attempted, accepted := f.ctrl.Stats()
	snap := Snapshot{
		Step:        step,
		Volume:      box.Volume(),
		Lengths:     box.Lengths(),
		VolumeScale: f.ctrl.VolumeScale(),
		Attempted:   attempted,
		Accepted:    accepted,
	}
	select {
	case f.ch <- snap:
	default:
	}
}

// Close signals the view that the run finished.
func (f *Feed) Close() { close(f.ch) }

type snapshotMsg Snapshot

type doneMsg struct{}

// Model is the bubbletea model for the live view.
type Model struct {
	feed    *Feed
	title   string
	latest  Snapshot
	history []float64
	done    bool
}

func NewModel(feed *Feed, title string) Model {
	return Model{
		feed:    feed,
		title:   title,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.wait()
}

func (m Model) wait() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.feed.ch
		if !ok {
			return doneMsg{}
		}
		return snapshotMsg(snap)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case snapshotMsg:
		m.latest = Snapshot(msg)
		m.history = append(m.history, m.latest.Volume)
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return m, m.wait()
	case doneMsg:
		m.done = true
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n")

	acceptance := 0.0
	if m.latest.Attempted > 0 {
		acceptance = 100 * float64(m.latest.Accepted) / float64(m.latest.Attempted)
	}
	stats := []string{
		row("step", fmt.Sprintf("%d", m.latest.Step)),
		row("volume", fmt.Sprintf("%.4f nm³", m.latest.Volume)),
		row("box", fmt.Sprintf("%.3f × %.3f × %.3f nm", m.latest.Lengths[0], m.latest.Lengths[1], m.latest.Lengths[2])),
		row("amplitude", fmt.Sprintf("%.4g / %.4g / %.4g", m.latest.VolumeScale[0], m.latest.VolumeScale[1], m.latest.VolumeScale[2])),
		row("acceptance", fmt.Sprintf("%.1f%% (%d/%d)", acceptance, m.latest.Accepted, m.latest.Attempted)),
	}
	b.WriteString(statsStyle.Render(strings.Join(stats, "\n")))
	b.WriteString("\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("volume (nm³)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString(helpStyle.Render("run complete — q to exit"))
	} else {
		b.WriteString(helpStyle.Render("q to quit"))
	}
	return b.String()
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
