package maze

// Direction names one side of a cell.
type Direction int

// The four sides of a cell. The values index the wall and link arrays of a Node.
const (
	North Direction = iota
	East
	South
	West
)

// priority is the order in which the first-neighbor probes scan the sides.
var priority = [...]Direction{East, South, North, West}

// Directions lists every side in declaration order.
var Directions = [...]Direction{North, East, South, West}

// Opposite returns the side facing d on the neighboring cell.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the row and column offset of the neighbor on side d.
func (d Direction) Delta() CellPosition {
	switch d {
	case North:
		return CellPosition{Row: -1, Col: 0}
	case East:
		return CellPosition{Row: 0, Col: 1}
	case South:
		return CellPosition{Row: 1, Col: 0}
	default:
		return CellPosition{Row: 0, Col: -1}
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}
