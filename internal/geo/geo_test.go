package geo

import (
	"math"
	"path/filepath"
	"testing"
)

func TestBBox_Extend(t *testing.T) {
	var b BBox
	b = b.Extend(10, 20, true)
	if b != (BBox{MinX: 10, MinY: 20, MaxX: 10, MaxY: 20}) {
		t.Fatalf("first extend: %+v", b)
	}
	b = b.Extend(-5, 25, false)
	b = b.Extend(15, 18, false)
	want := BBox{MinX: -5, MinY: 18, MaxX: 15, MaxY: 25}
	if b != want {
		t.Errorf("Extend = %+v, want %+v", b, want)
	}
	if !b.Valid() {
		t.Error("box with extent reported invalid")
	}
	var zero BBox
	if zero.Valid() {
		t.Error("zero box reported valid")
	}
}

func TestViewport_CellXY(t *testing.T) {
	v := NewViewport(WorldBBox, 100, 40)

	// Corners of the box land on the corners of the grid (north up).
	tests := []struct {
		lon, lat float64
		wantX    int
		wantY    int
	}{
		{-180, 85, 0, 0},
		{180, 85, 99, 0},
		{-180, -85, 0, 39},
		{180, -85, 99, 39},
		{0, 0, 49, 19},
	}
	for _, tt := range tests {
		x, y, ok := v.CellXY(tt.lon, tt.lat)
		if !ok {
			t.Fatalf("CellXY(%v,%v) not ok", tt.lon, tt.lat)
		}
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("CellXY(%v,%v) = (%d,%d), want (%d,%d)", tt.lon, tt.lat, x, y, tt.wantX, tt.wantY)
		}
	}

	var invalid Viewport
	if _, _, ok := invalid.CellXY(0, 0); ok {
		t.Error("invalid viewport projected a point")
	}
}

func TestViewport_MicroMatchesCells(t *testing.T) {
	v := NewViewport(WorldBBox, 80, 24)
	for _, pt := range [][2]float64{{0, 0}, {100, 45}, {-120, -30}} {
		cx, cy, _ := v.CellXY(pt[0], pt[1])
		mx, my, _ := v.MicroXY(pt[0], pt[1])
		// Micro coordinates fall within one cell of the cell projection.
		if d := mx/2 - cx; d < -1 || d > 1 {
			t.Errorf("micro x cell %d vs cell %d for %v", mx/2, cx, pt)
		}
		if d := my/4 - cy; d < -1 || d > 1 {
			t.Errorf("micro y cell %d vs cell %d for %v", my/4, cy, pt)
		}
	}
}

func TestViewport_LonLatInverse(t *testing.T) {
	v := NewViewport(WorldBBox, 120, 40)
	v.Zoom = 2.5
	v.OffsetX = 7
	v.OffsetY = -3
	for _, pt := range [][2]float64{{12.5, 41.9}, {-74, 40.7}, {139.7, 35.7}} {
		cx, cy, ok := v.CellXY(pt[0], pt[1])
		if !ok {
			t.Fatal("projection failed")
		}
		lon, lat, ok := v.LonLat(cx, cy)
		if !ok {
			t.Fatal("inverse failed")
		}
		// Cell truncation loses up to one cell worth of geography.
		cellLon := (v.BBox.MaxX - v.BBox.MinX) / (float64(v.W-1) * v.Zoom)
		cellLat := (v.BBox.MaxY - v.BBox.MinY) / (float64(v.H-1) * v.Zoom)
		if math.Abs(lon-pt[0]) > cellLon || math.Abs(lat-pt[1]) > cellLat {
			t.Errorf("round trip %v -> (%v,%v), error beyond one cell", pt, lon, lat)
		}
	}
}

func TestBuiltinWorld(t *testing.T) {
	w := BuiltinWorld()
	if len(w.Lines) < 8 {
		t.Fatalf("builtin world has %d outlines", len(w.Lines))
	}
	if !w.BBox.Valid() {
		t.Fatal("builtin bbox invalid")
	}
	for i, ls := range w.Lines {
		if len(ls) < 2 {
			t.Errorf("outline %d has %d vertices", i, len(ls))
		}
		for _, p := range ls {
			if p[0] < -180 || p[0] > 180 || p[1] < -90 || p[1] > 90 {
				t.Errorf("outline %d has out-of-range vertex %v", i, p)
			}
		}
	}
}

func TestLoadWorld(t *testing.T) {
	w, err := LoadWorld(filepath.Join("testdata", "outline.geojson"))
	if err != nil {
		t.Fatal(err)
	}
	// One LineString, two MultiLineString parts; the Point feature is ignored.
	if len(w.Lines) != 3 {
		t.Errorf("Lines = %d, want 3", len(w.Lines))
	}
	if len(w.Polygons) != 1 {
		t.Errorf("Polygons = %d, want 1", len(w.Polygons))
	}
	if w.BBox.MinX != -10 || w.BBox.MaxX != 143 {
		t.Errorf("bbox lon range [%v,%v], want [-10,143]", w.BBox.MinX, w.BBox.MaxX)
	}
}

func TestLoadWorld_Missing(t *testing.T) {
	if _, err := LoadWorld(filepath.Join("testdata", "nope.geojson")); err == nil {
		t.Error("want error for missing file")
	}
}
