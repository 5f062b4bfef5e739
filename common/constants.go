package common

const (
	// TileSize is the edge length of a grid cell in pixels.
	TileSize = 16

	BaseWidth  = 640
	BaseHeight = 360
)
