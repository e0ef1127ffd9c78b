package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"attackmap/internal/anim"
	"attackmap/internal/arc"
	"attackmap/internal/geo"
	"attackmap/internal/threat"
)

// arcSamples is the per-arc sampling resolution for both the trail and the
// dash pattern. At braille scale anything past ~50 samples stops being
// visible.
const arcSamples = 48

// overlay is a full-cell glyph drawn on top of the braille layer: particle
// heads, hub markers, the hover ring.
type overlay struct {
	glyph rune
	hex   string
}

// renderMap draws the world outline, every active arc, and the markers into
// a braille buffer, then composites it into styled terminal rows.
//
// All geometry is rebuilt from the current viewport on every call: zooming or
// panning yields new projected endpoints and therefore new arcs, never
// transformed old ones.
func (m Model) renderMap(w, h int) string {
	th := m.theme()
	v := m.viewport(w, h)
	br := newBrailleBuf(w, h)
	overlays := make(map[[2]int]overlay)

	m.drawWorld(br, v, th)
	m.drawHubs(br, v, th, overlays)
	for i, a := range m.feed.Attacks {
		m.drawAttack(br, v, th, overlays, a, m.flights[i])
	}
	if m.hovering && m.hoverID != "" {
		if loc, ok := m.feed.Index[m.hoverID]; ok {
			if mx, my, ok := v.MicroXY(loc.Lng, loc.Lat); ok {
				overlays[[2]int{mx / 2, my / 4}] = overlay{glyph: '◯', hex: "#FFA500"}
			}
		}
	}

	return compose(br, overlays, w, h)
}

func (m Model) drawWorld(br *brailleBuf, v geo.Viewport, th Theme) {
	hex := th.Outline.Hex()
	stroke := func(ls [][2]float64, closed bool) {
		var prev [2]int
		havePrev := false
		for _, p := range ls {
			mx, my, ok := v.MicroXY(p[0], p[1])
			if !ok {
				continue
			}
			if havePrev {
				br.drawLineMicro(prev[0], prev[1], mx, my, hex)
			}
			prev = [2]int{mx, my}
			havePrev = true
		}
		if closed && havePrev {
			if mx, my, ok := v.MicroXY(ls[0][0], ls[0][1]); ok {
				br.drawLineMicro(prev[0], prev[1], mx, my, hex)
			}
		}
	}
	for _, ls := range m.world.Lines {
		stroke(ls, false)
	}
	for _, poly := range m.world.Polygons {
		for _, ring := range poly {
			stroke(ring, true)
		}
	}
}

func (m Model) drawHubs(br *brailleBuf, v geo.Viewport, th Theme, overlays map[[2]int]overlay) {
	hex := th.HubColor.Hex()
	for _, loc := range m.feed.Index {
		mx, my, ok := v.MicroXY(loc.Lng, loc.Lat)
		if !ok {
			continue
		}
		br.setPixelColor(mx, my, hex)
		overlays[[2]int{mx / 2, my / 4}] = overlay{glyph: th.HubGlyph, hex: hex}
	}
}

// drawAttack renders one record according to its flight phase.
func (m Model) drawAttack(br *brailleBuf, v geo.Viewport, th Theme, overlays map[[2]int]overlay, a threat.Attack, f anim.Flight) {
	phase, prog := f.At(m.clock)
	if phase == anim.PhaseWaiting || phase == anim.PhaseDwell {
		return
	}

	sx, sy, okS := v.MicroF(a.Source.Lng, a.Source.Lat)
	tx, ty, okT := v.MicroF(a.Target.Lng, a.Target.Lat)
	if !okS || !okT {
		return
	}
	curve := m.engine.Build(arc.Pt(sx, sy), arc.Pt(tx, ty), kindFor(a.Severity))

	switch phase {
	case anim.PhaseFlying:
		if m.dashMode {
			m.drawDashFlow(br, th, a.Severity, curve, prog)
		} else {
			m.drawParticleFlow(br, th, overlays, a.Severity, curve, prog)
		}
	case anim.PhaseImpact:
		// The arc fades out under the pulse.
		m.drawArcFaded(br, th, a.Severity, curve, 0.4*(1-prog))
		m.drawPulse(br, th, a.Severity, curve.Target, prog)
	}
}

// drawParticleFlow draws the flown portion of the arc with a fading trail
// and a bright head particle at the eased progress position.
func (m Model) drawParticleFlow(br *brailleBuf, th Theme, overlays map[[2]int]overlay, s threat.Severity, curve arc.Arc, prog float64) {
	eased := anim.InOutQuad(prog)
	tail := clamp01(eased - th.TrailFade)
	span := eased - tail
	if span <= 0 {
		span = 1e-9
	}
	var prev arc.Point
	havePrev := false
	for i := 0; i <= arcSamples; i++ {
		t := tail + span*float64(i)/arcSamples
		p := curve.PointAt(t)
		if havePrev {
			hex := th.fade(s, float64(i)/arcSamples).Hex()
			br.drawLineMicro(int(prev.X), int(prev.Y), int(p.X), int(p.Y), hex)
		}
		prev = p
		havePrev = true
	}
	head := curve.PointAt(eased)
	cell := [2]int{int(head.X) / 2, int(head.Y) / 4}
	overlays[cell] = overlay{glyph: th.HeadGlyph, hex: th.Severity[s].Hex()}
}

// drawDashFlow draws the whole arc as a dash pattern whose offset advances
// with progress, the stroke-dashoffset technique translated to braille.
func (m Model) drawDashFlow(br *brailleBuf, th Theme, s threat.Severity, curve arc.Arc, prog float64) {
	eased := anim.Linear(prog)
	shift := int(eased * arcSamples)
	hex := th.Severity[s].Hex()
	for i := 0; i < arcSamples; i++ {
		// Pattern scrolls from source toward target.
		k := i - shift
		k %= th.DashPeriod
		if k < 0 {
			k += th.DashPeriod
		}
		if k >= th.DashOn {
			continue
		}
		p := curve.PointAt(float64(i) / arcSamples)
		q := curve.PointAt(float64(i+1) / arcSamples)
		br.drawLineMicro(int(p.X), int(p.Y), int(q.X), int(q.Y), hex)
	}
}

// drawArcFaded strokes the full arc at a given brightness.
func (m Model) drawArcFaded(br *brailleBuf, th Theme, s threat.Severity, curve arc.Arc, brightness float64) {
	if brightness <= 0.02 {
		return
	}
	hex := th.fade(s, brightness).Hex()
	var prev arc.Point
	for i := 0; i <= arcSamples; i++ {
		p := curve.PointAt(float64(i) / arcSamples)
		if i > 0 {
			br.drawLineMicro(int(prev.X), int(prev.Y), int(p.X), int(p.Y), hex)
		}
		prev = p
	}
}

// drawPulse draws an expanding impact ring around the target.
func (m Model) drawPulse(br *brailleBuf, th Theme, s threat.Severity, at arc.Point, prog float64) {
	r := anim.OutCubic(prog) * float64(th.PulseMaxR)
	if r < 1 {
		return
	}
	hex := th.fade(s, 1-prog).Hex()
	steps := 8 + int(r*4)
	for i := 0; i < steps; i++ {
		ang := 2 * math.Pi * float64(i) / float64(steps)
		// Braille cells are twice as tall as wide, so flatten the ring.
		x := at.X + r*math.Cos(ang)
		y := at.Y + r*math.Sin(ang)*0.75
		br.setPixelColor(int(x), int(y), hex)
	}
}

// compose flattens the braille buffer and the glyph overlays into styled
// rows, batching runs of identically colored cells into one style call.
func compose(br *brailleBuf, overlays map[[2]int]overlay, w, h int) string {
	var sb strings.Builder
	for y := 0; y < h; y++ {
		var run strings.Builder
		runHex := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runHex == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runHex)).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < w; x++ {
			r, hex := br.cell(x, y)
			if ov, ok := overlays[[2]int{x, y}]; ok {
				r, hex = ov.glyph, ov.hex
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run.WriteRune(r)
		}
		flush()
		if y < h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
