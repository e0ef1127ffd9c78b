package tui

import (
	"fmt"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"attackmap/internal/anim"
	"attackmap/internal/arc"
	"attackmap/internal/geo"
	"attackmap/internal/threat"
)

// tickMsg carries the frame clock.
type tickMsg time.Time

type Model struct {
	width  int
	height int

	showSidebar   bool
	helpVisible   bool
	legendVisible bool
	showTable     bool
	dashMode      bool
	paused        bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	feed   *threat.Feed
	world  geo.World
	engine arc.Engine

	themes   []Theme
	themeIdx int

	// flights parallels feed.Attacks.
	flights  []anim.Flight
	clock    time.Time // animation clock; frozen while paused
	lastTick time.Time
	fps      int

	// attack feed sidebar
	l list.Model

	// attack table overlay
	tbl table.Model

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverID    string
}

// New builds the model around a validated feed and a world outline.
func New(feed *threat.Feed, world geo.World, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		showSidebar:   false,
		helpVisible:   true,
		legendVisible: true,
		zoom:          1.0,
		status:        "attackmap ready",
		feed:          feed,
		world:         world,
		engine:        arc.DefaultEngine(),
		themes:        builtinThemes(),
		fps:           fps,
		clock:         time.Now(),
		lastTick:      time.Now(),
	}
	if feed.Dropped > 0 {
		m.status = fmt.Sprintf("attackmap ready (%d records dropped: unknown location)", feed.Dropped)
	}
	m.flights = buildFlights(feed, m.theme(), m.clock)

	// sidebar list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(attackItems(feed), d, 0, 0)
	m.l.Title = "Attack feed"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	// table setup
	m.tbl = table.New(
		table.WithColumns(attackColumns()),
		table.WithRows(attackRows(feed)),
		table.WithFocused(true),
	)
	m.tbl.SetHeight(12)
	return m
}

func (m Model) theme() Theme {
	return m.themes[m.themeIdx]
}

// kindFor maps severity to a curve family: the worse the attack, the taller
// the arc.
func kindFor(s threat.Severity) arc.Kind {
	switch s {
	case threat.Medium:
		return arc.QuadGlobe
	case threat.High:
		return arc.CubicGlobe
	case threat.Critical:
		return arc.CubicParabolic
	}
	return arc.QuadGreatCircle
}

// buildFlights restarts every flight cycle at epoch with staggered launch
// delays so the arcs do not fire in lockstep. Rebuilt wholesale whenever the
// theme (and so the timing table) changes.
func buildFlights(feed *threat.Feed, th Theme, epoch time.Time) []anim.Flight {
	flights := make([]anim.Flight, len(feed.Attacks))
	for i, a := range feed.Attacks {
		timing := th.Timing[a.Severity]
		timing.Delay = time.Duration(i*617%5000) * time.Millisecond
		flights[i] = anim.NewFlight(epoch, timing)
	}
	return flights
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.tickCmd() }
