package threat

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed data/attacks.json
var defaultAttacks []byte

//go:embed data/locations.json
var defaultLocations []byte

// rawAttack mirrors the fixture schema before validation.
type rawAttack struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Severity    string `json:"severity"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type rawLocation struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// DefaultFeed returns the embedded synthetic fixture.
func DefaultFeed() (*Feed, error) {
	idx, err := parseLocations(defaultLocations)
	if err != nil {
		return nil, fmt.Errorf("embedded locations: %w", err)
	}
	return parseAttacks(defaultAttacks, idx)
}

// LoadFeed reads attack and location fixtures from disk. Either path may be
// empty, in which case the embedded fixture supplies that half. Locations
// may be JSON ({id: {lat, lng, name}}) or CSV with id/lat/lng/name columns.
func LoadFeed(attacksPath, locationsPath string) (*Feed, error) {
	var idx map[string]Location
	var err error
	switch {
	case locationsPath == "":
		idx, err = parseLocations(defaultLocations)
	case strings.EqualFold(filepath.Ext(locationsPath), ".csv"):
		idx, err = LoadLocationsCSV(locationsPath)
	default:
		var data []byte
		if data, err = os.ReadFile(locationsPath); err == nil {
			idx, err = parseLocations(data)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}

	attacks := defaultAttacks
	if attacksPath != "" {
		if attacks, err = os.ReadFile(attacksPath); err != nil {
			return nil, fmt.Errorf("attacks: %w", err)
		}
	}
	return parseAttacks(attacks, idx)
}

func parseLocations(data []byte) (map[string]Location, error) {
	var raw map[string]rawLocation
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("empty location table")
	}
	idx := make(map[string]Location, len(raw))
	for id, rl := range raw {
		l := Location{ID: id, Name: rl.Name, Lat: rl.Lat, Lng: rl.Lng}
		if l.Name == "" {
			l.Name = id
		}
		if err := validateLocation(l); err != nil {
			return nil, err
		}
		idx[id] = l
	}
	return idx, nil
}

// parseAttacks resolves every record against the index. Records with an
// unknown endpoint are dropped here so that the geometry layer downstream
// only ever receives resolved coordinates.
func parseAttacks(data []byte, idx map[string]Location) (*Feed, error) {
	var raw []rawAttack
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("empty attack fixture")
	}
	feed := &Feed{Index: idx}
	for i, ra := range raw {
		src, okS := idx[ra.Source]
		dst, okT := idx[ra.Target]
		if !okS || !okT {
			feed.Dropped++
			continue
		}
		sev, err := ParseSeverity(ra.Severity)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		feed.Attacks = append(feed.Attacks, Attack{
			Source:      src,
			Target:      dst,
			Severity:    sev,
			Type:        ra.Type,
			Description: ra.Description,
		})
	}
	if len(feed.Attacks) == 0 {
		return nil, errors.New("no attack records survived endpoint resolution")
	}
	return feed, nil
}
