package common

import "math"

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Cell returns the grid cell containing the pixel coordinate v.
func Cell(v float64) int {
	return int(math.Floor(v / TileSize))
}
