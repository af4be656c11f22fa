package core

// Cell holds one grid slot: the rule state and the color it was given.
type Cell struct {
	State State
	Color Color
}

// Grid stores an n×n field of cells in row-major order. Neighbor sets come
// from a shared Topology and are never recomputed.
type Grid struct {
	topo  *Topology
	n     int
	cells []Cell
}

// NewGrid allocates a grid shaped by topo with every cell set to def.
func NewGrid(topo *Topology, def State) *Grid {
	n := topo.Size()
	g := &Grid{topo: topo, n: n, cells: make([]Cell, n*n)}
	g.Fill(def, Black)
	return g
}

// Size returns the grid side length.
func (g *Grid) Size() int { return g.n }

// Cells exposes the backing slice. Callers must treat it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.n + x }

// State returns the state of the cell at (x, y).
func (g *Grid) State(x, y int) State { return g.cells[g.Index(x, y)].State }

// Color returns the color of the cell at (x, y).
func (g *Grid) Color(x, y int) Color { return g.cells[g.Index(x, y)].Color }

// Neighbors returns the cached neighbor coordinates of (x, y).
func (g *Grid) Neighbors(x, y int) []Neighbor { return g.topo.At(x, y) }

// NeighborStates appends the state of each neighbor of (x, y) in this grid to
// dst[:0] and returns it. The grid is not modified.
func (g *Grid) NeighborStates(x, y int, dst []NeighborState) []NeighborState {
	dst = dst[:0]
	for _, nb := range g.topo.At(x, y) {
		dst = append(dst, NeighborState{Dir: nb.Dir, State: g.cells[g.Index(nb.At.X, nb.At.Y)].State})
	}
	return dst
}

// SetCell overwrites the state and color of the cell at (x, y).
func (g *Grid) SetCell(x, y int, s State, c Color) {
	g.cells[g.Index(x, y)] = Cell{State: s, Color: c}
}

// Fill sets every cell to the given state and color.
func (g *Grid) Fill(s State, c Color) {
	for i := range g.cells {
		g.cells[i] = Cell{State: s, Color: c}
	}
}
