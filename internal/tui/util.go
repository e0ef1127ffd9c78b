package tui

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
