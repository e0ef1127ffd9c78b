package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"attackmap/internal/anim"
	"attackmap/internal/threat"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// Theme is the single per-look configuration point. Every surface shares one
// geometry engine; themes only vary palette, glyphs, and timing.
type Theme struct {
	Name string

	Outline  colorful.Color
	HubColor colorful.Color
	// Severity indexes by threat.Severity.
	Severity [4]colorful.Color

	// TrailFade is the fraction of flown path kept lit behind the head.
	TrailFade float64

	HeadGlyph rune
	HubGlyph  rune
	// PulseMaxR is the impact ring radius in braille micro-pixels.
	PulseMaxR int
	// Dash pattern for dash-flow mode: DashOn lit samples per DashPeriod.
	DashOn     int
	DashPeriod int

	// Timing indexes by severity; worse attacks fly faster and pulse longer.
	Timing [4]anim.Timing
}

func mustHex(s string) colorful.Color {
	c, _ := colorful.Hex(s)
	return c
}

func defaultTimings() [4]anim.Timing {
	mk := func(flight, impact time.Duration) anim.Timing {
		return anim.Timing{
			Flight: flight,
			Impact: impact,
			Dwell:  1200 * time.Millisecond,
		}
	}
	var t [4]anim.Timing
	t[threat.Low] = mk(3200*time.Millisecond, 500*time.Millisecond)
	t[threat.Medium] = mk(2800*time.Millisecond, 600*time.Millisecond)
	t[threat.High] = mk(2300*time.Millisecond, 800*time.Millisecond)
	t[threat.Critical] = mk(1800*time.Millisecond, 1000*time.Millisecond)
	return t
}

// builtinThemes returns the shipped looks, cycled with the theme key.
func builtinThemes() []Theme {
	return []Theme{
		{
			Name:     "midnight",
			Outline:  mustHex("#2E4057"),
			HubColor: mustHex("#8899AA"),
			Severity: [4]colorful.Color{
				threat.Low:      mustHex("#4A9EDE"),
				threat.Medium:   mustHex("#E8C547"),
				threat.High:     mustHex("#F08A4B"),
				threat.Critical: mustHex("#E3170A"),
			},
			TrailFade:  0.35,
			HeadGlyph:  '●',
			HubGlyph:   '◦',
			PulseMaxR:  6,
			DashOn:     3,
			DashPeriod: 8,
			Timing:     defaultTimings(),
		},
		{
			Name:     "phosphor",
			Outline:  mustHex("#1F4F2F"),
			HubColor: mustHex("#5FAF5F"),
			Severity: [4]colorful.Color{
				threat.Low:      mustHex("#7FDB8F"),
				threat.Medium:   mustHex("#B8E986"),
				threat.High:     mustHex("#E8F086"),
				threat.Critical: mustHex("#FFFFFF"),
			},
			TrailFade:  0.5,
			HeadGlyph:  '◉',
			HubGlyph:   '·',
			PulseMaxR:  8,
			DashOn:     2,
			DashPeriod: 6,
			Timing:     defaultTimings(),
		},
	}
}

func (t Theme) severityStyle(s threat.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Severity[s].Hex()))
}

// fade blends a severity color toward the outline color; tt=1 is the full
// severity color, tt=0 sinks into the map background.
func (t Theme) fade(s threat.Severity, tt float64) colorful.Color {
	if tt < 0 {
		tt = 0
	}
	if tt > 1 {
		tt = 1
	}
	return t.Outline.BlendLuv(t.Severity[s], tt)
}
