package render

import "cellsim/internal/core"

// Export flattens the grid's colors into row-major RGBA8 bytes, four per
// cell, each channel rounded and clamped to [0, 255]. dst is reused when it
// already has the right length. The grid is only read.
func Export(g *core.Grid, dst []byte) []byte {
	cells := g.Cells()
	if len(dst) != len(cells)*4 {
		dst = make([]byte, len(cells)*4)
	}
	for i, c := range cells {
		base := i * 4
		col := c.Color
		dst[base+0] = core.Channel8(col.R)
		dst[base+1] = core.Channel8(col.G)
		dst[base+2] = core.Channel8(col.B)
		dst[base+3] = core.Channel8(col.A)
	}
	return dst
}
