package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"attackmap/internal/anim"
	"attackmap/internal/geo"
	"attackmap/internal/threat"
)

const sidebarWidth = 28

// mapRect returns the map area origin and size for the current layout; hover
// hit-testing in Update must agree with View, so both go through here.
func (m Model) mapRect() (ox, oy, w, h int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
	}
	headerHeight := 1
	if m.legendVisible {
		headerHeight++
	}
	footerHeight := 2
	ch := m.height - headerHeight - footerHeight
	if ch < 4 {
		ch = 4
	}
	cw := max(10, m.width)
	mw := cw - sw
	if sw > 0 {
		mw-- // gap column
	}
	if mw < 10 {
		mw = 10
	}
	ox = sw
	if sw > 0 {
		ox++
	}
	return ox, headerHeight, mw, ch
}

func (m Model) viewport(w, h int) geo.Viewport {
	bbox := m.world.BBox
	if !bbox.Valid() {
		bbox = geo.WorldBBox
	}
	v := geo.NewViewport(bbox, w, h)
	v.Zoom = m.zoom
	v.OffsetX = m.offsetX
	v.OffsetY = m.offsetY
	return v
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	_, _, mapWidth, mapHeight := m.mapRect()
	contentWidth := max(10, m.width)

	// Header: title plus live counters.
	header := titleStyle.Render(" attackmap ─ live threat arcs ") + " " + m.renderCounters()
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var legend string
	if m.legendVisible {
		legend = lipgloss.NewStyle().Width(contentWidth).Render(m.renderLegend())
	}

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, mapHeight-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var body string
	if m.showTable {
		m.tbl.SetWidth(mapWidth)
		m.tbl.SetHeight(min(mapHeight-2, len(m.feed.Attacks)+1))
		body = boxStyle.Render(m.tbl.View())
	} else {
		body = m.renderMap(mapWidth, mapHeight)
	}
	mapView := lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(body)

	var row string
	if m.showSidebar {
		row = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		row = mapView
	}

	// Hover tooltip: overlay box placed near the left edge of the map.
	popup := ""
	if m.hovering && m.hoverID != "" && !m.showTable {
		popup = lipgloss.Place(contentWidth, mapHeight, lipgloss.Left, lipgloss.Center, m.renderTooltip())
	}

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	parts := []string{header}
	if legend != "" {
		parts = append(parts, legend)
	}
	if popup != "" {
		parts = append(parts, popup)
	}
	parts = append(parts, row, footer)
	ui := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderCounters() string {
	totals := m.feed.Totals()
	th := m.theme()
	inFlight := 0
	for _, f := range m.flights {
		if phase, _ := f.At(m.clock); phase == anim.PhaseFlying {
			inFlight++
		}
	}
	parts := []string{
		dimStyle.Render(fmt.Sprintf("attacks %d", len(m.feed.Attacks))),
		th.severityStyle(threat.Critical).Render(fmt.Sprintf("crit %d", totals[threat.Critical])),
		th.severityStyle(threat.High).Render(fmt.Sprintf("high %d", totals[threat.High])),
		th.severityStyle(threat.Medium).Render(fmt.Sprintf("med %d", totals[threat.Medium])),
		th.severityStyle(threat.Low).Render(fmt.Sprintf("low %d", totals[threat.Low])),
		dimStyle.Render(fmt.Sprintf("in-flight %d", inFlight)),
	}
	return strings.Join(parts, dimStyle.Render(" ▪ "))
}

func (m Model) renderLegend() string {
	th := m.theme()
	sevs := []threat.Severity{threat.Low, threat.Medium, threat.High, threat.Critical}
	parts := make([]string, 0, len(sevs)+1)
	for _, s := range sevs {
		parts = append(parts, th.severityStyle(s).Render("━ "+s.String()))
	}
	mode := "particle"
	if m.dashMode {
		mode = "dash"
	}
	parts = append(parts, dimStyle.Render(fmt.Sprintf("theme:%s flow:%s", th.Name, mode)))
	return "  " + strings.Join(parts, "   ")
}

func (m Model) renderTooltip() string {
	loc, ok := m.feed.Index[m.hoverID]
	if !ok {
		return ""
	}
	in, out := m.feed.CountsFor(m.hoverID)
	lines := []string{
		titleStyle.Render(loc.Name),
		fmt.Sprintf("lat %.2f  lng %.2f", loc.Lat, loc.Lng),
		fmt.Sprintf("inbound %d  outbound %d", in, out),
	}
	if sev, ok := m.feed.TopSeverityFor(m.hoverID); ok {
		lines = append(lines, "worst: "+m.theme().severityStyle(sev).Render(sev.String()))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab feed",
		"a table",
		"Space pause",
		"d flow",
		"t theme",
		"l legend",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
