// Package noc defines the commonly used data structures of the mesh
// network-on-chip.
package noc

// Direction defines the side of a node that a link attaches to.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	Local
)

// NumDirections is the number of mesh directions. Local is not counted.
const NumDirections = 4

// NumPorts is the number of router ports, the mesh directions plus Local.
const NumPorts = NumDirections + 1

// MeshDirections lists the directions that connect a node to its neighbors.
var MeshDirections = [NumDirections]Direction{North, East, South, West}

// Name returns the name of the direction.
func (d Direction) Name() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case Local:
		return "Local"
	default:
		panic("invalid direction")
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	return d.Name()
}

// Opposite returns the direction a neighbor uses to reach back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case Local:
		return Local
	default:
		panic("invalid direction")
	}
}

// Offset returns the coordinate step taken when moving along the direction.
// North points toward row 0.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case Local:
		return 0, 0
	default:
		panic("invalid direction")
	}
}

// IsValid tells if d is one of the router ports.
func (d Direction) IsValid() bool {
	return d >= North && d <= Local
}
