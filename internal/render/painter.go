//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads exported frames into a single image and draws it.
type GridPainter struct {
	size int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a size×size grid.
func NewGridPainter(size int) *GridPainter {
	return &GridPainter{size: size, img: ebiten.NewImage(size, size)}
}

// Blit uploads frame into the painter image and draws it scaled onto dst.
// Frames of the wrong length are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, frame []byte, scale int) {
	if len(frame) != gp.size*gp.size*4 {
		return
	}
	gp.img.WritePixels(frame)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the side length of the underlying image.
func (gp *GridPainter) Size() int { return gp.size }
