package tui

// brailleBuf is a high-resolution drawing surface: each terminal cell holds a
// 2x4 micro-pixel grid mapped onto a braille rune. A parallel color layer
// tracks one foreground color per cell; the last writer wins, so brighter
// layers (arcs, particles) are drawn after the map outline.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	c    []string  // per-cell color hex, row-major; "" means uncolored
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: make([]string, w*h)}
}

// setPixelColor sets a micro-pixel at micro coords (2x4 per cell) and assigns
// its cell a color. An empty color leaves the cell's existing color alone.
func (b *brailleBuf) setPixelColor(mx, my int, hex string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	if hex != "" {
		b.c[cy*b.w+cx] = hex
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, hex string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixelColor(x0, y0, hex)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cell returns the rune and color at cell coordinates, space when unset.
func (b *brailleBuf) cell(x, y int) (rune, string) {
	if y < 0 || y >= b.h || x < 0 || x >= b.w {
		return ' ', ""
	}
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', ""
	}
	return rune(0x2800 + int(mask)), b.c[y*b.w+x]
}
