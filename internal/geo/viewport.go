package geo

// Viewport projects lon/lat into terminal cells with zoom about the view
// center and integer pan offsets. Cell coordinates address whole terminal
// cells; micro coordinates address the 2x4 braille sub-grid within each cell.
//
// A Viewport is a value. Changing zoom, pan, or size produces a new
// projection, and everything derived from projected points (arcs included)
// is rebuilt from scratch rather than transformed.
type Viewport struct {
	BBox    BBox
	Zoom    float64
	OffsetX int
	OffsetY int
	W, H    int // map size in cells
}

// NewViewport returns a viewport over the given box at 1x zoom.
func NewViewport(bbox BBox, w, h int) Viewport {
	return Viewport{BBox: bbox, Zoom: 1.0, W: w, H: h}
}

// normalized maps lon/lat to zoomed unit coordinates around (0.5, 0.5).
func (v Viewport) normalized(lon, lat float64) (float64, float64, bool) {
	if !v.BBox.Valid() {
		return 0, 0, false
	}
	nx := (lon - v.BBox.MinX) / (v.BBox.MaxX - v.BBox.MinX)
	ny := (lat - v.BBox.MinY) / (v.BBox.MaxY - v.BBox.MinY)
	zx := 0.5 + (nx-0.5)*v.Zoom
	zy := 0.5 + (ny-0.5)*v.Zoom
	return zx, zy, true
}

// CellXY maps lon/lat to cell coordinates. The y axis is flipped: north is up.
func (v Viewport) CellXY(lon, lat float64) (int, int, bool) {
	zx, zy, ok := v.normalized(lon, lat)
	if !ok {
		return 0, 0, false
	}
	sx := int(zx*float64(v.W-1)) + v.OffsetX
	sy := int((1.0-zy)*float64(v.H-1)) + v.OffsetY
	return sx, sy, true
}

// MicroXY maps lon/lat into the 2x4 braille micro-grid.
func (v Viewport) MicroXY(lon, lat float64) (int, int, bool) {
	zx, zy, ok := v.normalized(lon, lat)
	if !ok {
		return 0, 0, false
	}
	wMic := v.W * 2
	hMic := v.H * 4
	sx := int(zx*float64(wMic-1)) + v.OffsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + v.OffsetY*4
	return sx, sy, true
}

// MicroF is MicroXY without integer truncation, for geometry that is sampled
// rather than plotted (arc endpoints).
func (v Viewport) MicroF(lon, lat float64) (float64, float64, bool) {
	zx, zy, ok := v.normalized(lon, lat)
	if !ok {
		return 0, 0, false
	}
	wMic := v.W * 2
	hMic := v.H * 4
	sx := zx*float64(wMic-1) + float64(v.OffsetX*2)
	sy := (1.0-zy)*float64(hMic-1) + float64(v.OffsetY*4)
	return sx, sy, true
}

// LonLat inverts CellXY: maps a cell back to geography, for hover inspection.
func (v Viewport) LonLat(cx, cy int) (float64, float64, bool) {
	if !v.BBox.Valid() || v.W <= 1 || v.H <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-v.OffsetX) / float64(v.W-1)
	zy := 1.0 - float64(cy-v.OffsetY)/float64(v.H-1)
	nx := 0.5 + (zx-0.5)/v.Zoom
	ny := 0.5 + (zy-0.5)/v.Zoom
	lon := v.BBox.MinX + nx*(v.BBox.MaxX-v.BBox.MinX)
	lat := v.BBox.MinY + ny*(v.BBox.MaxY-v.BBox.MinY)
	return lon, lat, true
}
