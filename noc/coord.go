package noc

import "fmt"

// NodeID identifies a node of the mesh. IDs are assigned row by row, so the
// node at (x, y) gets y*dimX + x.
type NodeID int

// Coordinate is the position of a node in the mesh.
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Neighbor returns the coordinate one hop away along d. The result may lie
// outside the mesh.
func (c Coordinate) Neighbor(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// InMesh tells if the coordinate lies inside a dimX by dimY mesh.
func (c Coordinate) InMesh(dimX, dimY int) bool {
	return c.X >= 0 && c.X < dimX && c.Y >= 0 && c.Y < dimY
}

// IDOf returns the id of the node at c in a mesh that is dimX nodes wide.
func IDOf(c Coordinate, dimX int) NodeID {
	return NodeID(c.Y*dimX + c.X)
}

// CoordOf is the inverse of IDOf.
func CoordOf(id NodeID, dimX int) Coordinate {
	return Coordinate{X: int(id) % dimX, Y: int(id) / dimX}
}

// ManhattanDistance returns the hop distance between two coordinates.
func ManhattanDistance(a, b Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
