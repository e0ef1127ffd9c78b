package threat

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadLocationsCSV reads a location table from a CSV file. Column detection
// is case-insensitive: id|code|country, lat|latitude|y, lon|lng|long|longitude|x,
// and an optional name|label column. Rows with unparsable coordinates are
// skipped.
func LoadLocationsCSV(path string) (map[string]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) < 2 {
		return nil, errors.New("csv: no data rows")
	}

	idxID, idxLat, idxLon, idxName := -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id", "code", "country":
			if idxID == -1 {
				idxID = i
			}
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		case "name", "label":
			if idxName == -1 {
				idxName = i
			}
		}
	}
	if idxID == -1 || idxLat == -1 || idxLon == -1 {
		return nil, errors.New("csv: id/latitude/longitude columns not found")
	}

	idx := make(map[string]Location)
	for _, row := range recs[1:] {
		if idxID >= len(row) || idxLat >= len(row) || idxLon >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[idxID])
		lat, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		lon, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		if id == "" || err1 != nil || err2 != nil {
			continue
		}
		l := Location{ID: id, Name: id, Lat: lat, Lng: lon}
		if idxName != -1 && idxName < len(row) && strings.TrimSpace(row[idxName]) != "" {
			l.Name = strings.TrimSpace(row[idxName])
		}
		if err := validateLocation(l); err != nil {
			return nil, err
		}
		idx[id] = l
	}
	if len(idx) == 0 {
		return nil, errors.New("csv: no valid locations parsed")
	}
	return idx, nil
}
