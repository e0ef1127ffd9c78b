package geo

// BBox is a lon/lat bounding box.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box has positive extent on both axes.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Extend grows the box to include the given lon/lat. A zero box is replaced
// by a point box on first use.
func (b BBox) Extend(lon, lat float64, first bool) BBox {
	if first {
		return BBox{MinX: lon, MinY: lat, MaxX: lon, MaxY: lat}
	}
	if lon < b.MinX {
		b.MinX = lon
	}
	if lat < b.MinY {
		b.MinY = lat
	}
	if lon > b.MaxX {
		b.MaxX = lon
	}
	if lat > b.MaxY {
		b.MaxY = lat
	}
	return b
}

// WorldBBox is the full-globe extent used when no data-driven box applies.
var WorldBBox = BBox{MinX: -180, MinY: -85, MaxX: 180, MaxY: 85}

// World is an outline dataset for rendering: polylines (coastlines, borders)
// plus optional filled polygons with rings.
type World struct {
	Lines    [][][2]float64
	Polygons [][][][2]float64
	BBox     BBox
}
