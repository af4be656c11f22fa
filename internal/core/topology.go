package core

import "fmt"

// Direction tags a Moore neighbor relative to the cell it surrounds.
type Direction uint8

const (
	Top Direction = iota
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
	TopLeft
)

// Directions lists every neighbor direction in enumeration order.
var Directions = [8]Direction{Top, TopRight, Right, BottomRight, Bottom, BottomLeft, Left, TopLeft}

var directionOffsets = [8][2]int{
	Top:         {0, -1},
	TopRight:    {1, -1},
	Right:       {1, 0},
	BottomRight: {1, 1},
	Bottom:      {0, 1},
	BottomLeft:  {-1, 1},
	Left:        {-1, 0},
	TopLeft:     {-1, -1},
}

var directionNames = [8]string{
	Top:         "TOP",
	TopRight:    "TOP_RIGHT",
	Right:       "RIGHT",
	BottomRight: "BOTTOM_RIGHT",
	Bottom:      "BOTTOM",
	BottomLeft:  "BOTTOM_LEFT",
	Left:        "LEFT",
	TopLeft:     "TOP_LEFT",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "UNKNOWN"
}

// Offset returns the (dx, dy) step for the direction.
func (d Direction) Offset() (int, int) {
	o := directionOffsets[d&7]
	return o[0], o[1]
}

// Opposite returns the direction pointing back at the origin cell.
func (d Direction) Opposite() Direction { return (d + 4) & 7 }

// Coord addresses a cell on the grid.
type Coord struct {
	X, Y int
}

// Neighbor pairs a direction with the coordinate found in that direction.
type Neighbor struct {
	Dir Direction
	At  Coord
}

// Wrap folds v onto [0, n) so that -1 maps to n-1 and n maps to 0.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// Neighbors enumerates the Moore neighborhood of (x, y) on an n×n grid.
// With wrap enabled the grid is a torus and all eight neighbors are
// returned. Otherwise neighbors falling outside [0, n) are dropped.
func Neighbors(x, y, n int, wrap bool) []Neighbor {
	out := make([]Neighbor, 0, len(Directions))
	for _, d := range Directions {
		dx, dy := d.Offset()
		nx, ny := x+dx, y+dy
		if wrap {
			nx, ny = Wrap(nx, n), Wrap(ny, n)
		} else if nx < 0 || nx >= n || ny < 0 || ny >= n {
			continue
		}
		out = append(out, Neighbor{Dir: d, At: Coord{X: nx, Y: ny}})
	}
	return out
}

// Topology caches the neighbor sets of every cell of an n×n grid. It is
// immutable once built and may be shared by any number of grids.
type Topology struct {
	n     int
	table [][]Neighbor
}

// NewTopology precomputes the neighbor table for an n×n grid. It panics when
// n <= 0; callers validate sizes before building grids.
func NewTopology(n int, wrap bool) *Topology {
	if n <= 0 {
		panic(fmt.Sprintf("core: topology size must be > 0, got %d", n))
	}
	t := &Topology{n: n, table: make([][]Neighbor, n*n)}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			t.table[y*n+x] = Neighbors(x, y, n, wrap)
		}
	}
	return t
}

// Size returns the grid side length.
func (t *Topology) Size() int { return t.n }

// At returns the cached neighbor set for (x, y). Callers must not modify it.
func (t *Topology) At(x, y int) []Neighbor { return t.table[y*t.n+x] }
