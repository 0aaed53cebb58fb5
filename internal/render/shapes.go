package render

import "tilelife/internal/topology"

// Shape is a cell outline in units of the cell edge, centered on the
// origin with y pointing up.
type Shape struct {
	Vertices [][2]float32
	// Solid triangulates the outline.
	Solid []uint16
	// Wire lists the outline edges as index pairs.
	Wire []uint16
}

var (
	squareShape = Shape{
		Vertices: [][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}},
		Solid:    []uint16{0, 1, 3, 2, 1, 3},
		Wire:     []uint16{0, 1, 1, 2, 2, 3, 3, 0},
	}
	triangleShape = Shape{
		Vertices: [][2]float32{{-0.5, -0.4}, {0.5, -0.4}, {0, 0.4}},
		Solid:    []uint16{0, 1, 2},
		Wire:     []uint16{0, 1, 1, 2, 2, 0},
	}
	hexagonShape = Shape{
		Vertices: [][2]float32{{0, -0.5}, {0.5, -0.25}, {0.5, 0.25}, {0, 0.5}, {-0.5, 0.25}, {-0.5, -0.25}},
		Solid:    []uint16{0, 1, 3, 1, 2, 3, 0, 3, 4, 4, 5, 0},
		Wire:     []uint16{0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 0},
	}
)

// ShapeFor returns the outline drawn for each cell of mode m.
func ShapeFor(m topology.Mode) Shape {
	switch m {
	case topology.Triangle:
		return triangleShape
	case topology.Hexagon:
		return hexagonShape
	default:
		return squareShape
	}
}
