package tui

import (
	"fmt"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		delta := now.Sub(m.lastTick)
		// Clamp after suspends so the animation does not leap.
		if delta < 0 || delta > time.Second {
			delta = time.Second / time.Duration(m.fps)
		}
		m.lastTick = now
		if !m.paused {
			m.clock = m.clock.Add(delta)
		}
		return m, m.tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; refined in View
		}

	case tea.KeyMsg:
		// If the sidebar is filtering, it owns the keyboard.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "a":
			m.showTable = !m.showTable
			if m.showTable {
				m.status = "attack table"
			} else {
				m.status = "map view"
			}
		case " ":
			m.paused = !m.paused
			if m.paused {
				m.status = "paused"
			} else {
				m.status = "running"
			}
		case "d":
			m.dashMode = !m.dashMode
			if m.dashMode {
				m.status = "dash flow"
			} else {
				m.status = "particle flow"
			}
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(m.themes)
			// Timing lives on the theme, so the cycles start over.
			m.flights = buildFlights(m.feed, m.theme(), m.clock)
			m.status = "theme: " + m.theme().Name
		case "l":
			m.legendVisible = !m.legendVisible
		case "h":
			m.helpVisible = !m.helpVisible
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		default:
			if m.showTable {
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}

	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
	}

	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateHover resolves the mouse position to the nearest attack hub, if any
// is close enough to matter.
func (m *Model) updateHover(x, y int) {
	ox, oy, w, h := m.mapRect()
	if x < ox || x >= ox+w || y < oy || y >= oy+h || w <= 0 || h <= 0 {
		m.hovering = false
		m.hoverID = ""
		return
	}
	m.hoverCellX = x - ox
	m.hoverCellY = y - oy

	v := m.viewport(w, h)
	hx := m.hoverCellX*2 + 1
	hy := m.hoverCellY*4 + 2
	// Within 10 micro-pixels of a hub counts as hovering it, roughly five
	// cells across and two and a half down.
	best := 10 * 10
	bestID := ""
	for id, loc := range m.feed.Index {
		mx, my, ok := v.MicroXY(loc.Lng, loc.Lat)
		if !ok {
			continue
		}
		dx, dy := mx-hx, my-hy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bestID = id
		}
	}
	m.hovering = bestID != ""
	m.hoverID = bestID
}
