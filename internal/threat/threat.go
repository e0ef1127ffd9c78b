// Package threat loads and validates the attack-record fixtures that drive
// the map. Records are resolved into strongly typed values once, at load
// time; nothing downstream performs untyped lookups, and the geometry layer
// never sees an unresolved location.
package threat

import (
	"errors"
	"fmt"
	"strings"
)

// Severity classifies an attack record. Higher is worse.
type Severity int

const (
	Low Severity = iota
	Medium
	High
	Critical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < Low || s > Critical {
		return "unknown"
	}
	return severityNames[s]
}

// ParseSeverity maps a fixture string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium", "med":
		return Medium, nil
	case "high":
		return High, nil
	case "critical", "crit":
		return Critical, nil
	}
	return Low, fmt.Errorf("unknown severity %q", s)
}

// Location is a resolved geographic endpoint.
type Location struct {
	ID   string
	Name string
	Lat  float64
	Lng  float64
}

// Attack is one validated record: both endpoints resolved, severity parsed.
type Attack struct {
	Source      Location
	Target      Location
	Severity    Severity
	Type        string
	Description string
}

// Feed is the validated bundle the TUI renders.
type Feed struct {
	Attacks []Attack
	Index   map[string]Location
	// Dropped counts records discarded for unresolvable endpoints.
	Dropped int
}

// Totals returns per-severity attack counts.
func (f *Feed) Totals() [4]int {
	var t [4]int
	for _, a := range f.Attacks {
		if a.Severity >= Low && a.Severity <= Critical {
			t[a.Severity]++
		}
	}
	return t
}

// CountsFor returns inbound and outbound attack counts for a location id.
func (f *Feed) CountsFor(id string) (in, out int) {
	for _, a := range f.Attacks {
		if a.Target.ID == id {
			in++
		}
		if a.Source.ID == id {
			out++
		}
	}
	return in, out
}

// TopSeverityFor returns the worst severity touching a location id.
func (f *Feed) TopSeverityFor(id string) (Severity, bool) {
	best := Low
	found := false
	for _, a := range f.Attacks {
		if a.Source.ID != id && a.Target.ID != id {
			continue
		}
		if !found || a.Severity > best {
			best = a.Severity
		}
		found = true
	}
	return best, found
}

func validateLocation(l Location) error {
	if l.ID == "" {
		return errors.New("location: empty id")
	}
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("location %s: latitude %v out of range", l.ID, l.Lat)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("location %s: longitude %v out of range", l.ID, l.Lng)
	}
	return nil
}
