package geo

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// LoadWorld reads a GeoJSON file and returns its line and polygon outlines.
// Point geometries are ignored: the world layer is drawn as strokes, and
// markers come from the threat location index instead.
func LoadWorld(path string) (World, error) {
	f, err := os.Open(path)
	if err != nil {
		return World{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return World{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return World{}, err
	}

	var w World
	first := true
	mark := func(p [2]float64) {
		w.BBox = w.BBox.Extend(p[0], p[1], first)
		first = false
	}
	addLine := func(ls [][2]float64) {
		if len(ls) < 2 {
			return
		}
		w.Lines = append(w.Lines, ls)
		for _, p := range ls {
			mark(p)
		}
	}
	addPoly := func(poly [][][2]float64) {
		if len(poly) == 0 {
			return
		}
		w.Polygons = append(w.Polygons, poly)
		for _, ring := range poly {
			for _, p := range ring {
				mark(p)
			}
		}
	}

	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return [2]float64{lon, lat}, true
			}
		}
		return [2]float64{}, false
	}
	parseLineString := func(v any) (ls [][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				ls = append(ls, pt)
			}
		}
		return ls, true
	}
	parsePolygon := func(v any) (poly [][][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, ring := range arr {
			if ls, ok := parseLineString(ring); ok {
				poly = append(poly, ls)
			}
		}
		return poly, true
	}

	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		gt, _ := g["type"].(string)
		switch gt {
		case "LineString":
			if ls, ok := parseLineString(g["coordinates"]); ok {
				addLine(ls)
			}
		case "MultiLineString":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if ls, ok := parseLineString(el); ok {
						addLine(ls)
					}
				}
			}
		case "Polygon":
			if poly, ok := parsePolygon(g["coordinates"]); ok {
				addPoly(poly)
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if poly, ok := parsePolygon(el); ok {
						addPoly(poly)
					}
				}
			}
		case "GeometryCollection":
			if gs, ok := g["geometries"].([]any); ok {
				for _, el := range gs {
					if gm, ok := el.(map[string]any); ok {
						walkGeom(gm)
					}
				}
			}
		}
	}

	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if g, ok := fm["geometry"].(map[string]any); ok {
						walkGeom(g)
					}
				}
			}
		}
	default:
		if len(raw) > 0 {
			walkGeom(raw)
		}
	}

	if len(w.Lines) == 0 && len(w.Polygons) == 0 {
		return World{}, errors.New("no line or polygon geometries found")
	}
	return w, nil
}
