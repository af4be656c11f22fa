//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"cellsim/internal/core"
	"cellsim/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 14
)

// Overlay draws a status panel and an optional activity mask on top of the
// simulation view.
type Overlay struct {
	sim   *engine.Simulation
	scale int

	showStatus   bool
	showActivity bool

	maskImg *ebiten.Image
	maskBuf []byte
	changed []uint8

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim *engine.Simulation, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles overlay toggles: Tab for the status panel, 1 for the
// activity mask.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.showStatus = !o.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showActivity = !o.showActivity
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showActivity {
		o.drawActivity(screen, scale)
	}
	if o.showStatus {
		o.drawStatus(screen, paused)
	}
}

func (o *Overlay) drawActivity(screen *ebiten.Image, scale int) {
	n := o.sim.Size()
	total := n * n
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != n {
		o.maskImg = ebiten.NewImage(n, n)
		o.maskBuf = make([]byte, 4*total)
	}
	o.changed = o.sim.ChangedMask(o.changed)
	for i, c := range o.changed {
		base := i * 4
		var a byte
		if c != 0 {
			a = 160
		}
		// Premultiplied alpha: a warm highlight over changed cells.
		o.maskBuf[base+0] = byte(uint16(255) * uint16(a) / 255)
		o.maskBuf[base+1] = byte(uint16(120) * uint16(a) / 255)
		o.maskBuf[base+2] = byte(uint16(40) * uint16(a) / 255)
		o.maskBuf[base+3] = a
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawStatus(screen *ebiten.Image, paused bool) {
	lines := o.statusLines(paused)
	width := 0
	for _, l := range lines {
		if w := len(l) * 7; w > width {
			width = w
		}
	}
	height := len(lines)*lineHeight + panelPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 170})
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	for i, l := range lines {
		text.Draw(screen, l, face, panelPadding, (i+1)*lineHeight, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

func (o *Overlay) statusLines(paused bool) []string {
	rule := o.sim.Rule()
	cfg := o.sim.Config()
	state := "running"
	if paused {
		state = "paused"
	}
	if !o.sim.IsInitialized() {
		state = "initializing"
	}
	lines := []string{
		fmt.Sprintf("%s  %dx%d  wrap=%t", rule.Name(), cfg.Size, cfg.Size, cfg.Wrap),
		fmt.Sprintf("step %d  %s", o.sim.StepIndex(), state),
	}
	if provider, ok := rule.(core.ParameterProvider); ok {
		var parts []string
		for _, p := range provider.Parameters() {
			parts = append(parts, p.Key+"="+p.Value)
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	lines = append(lines, "space run/pause  n step  r reset  s reseed")
	return lines
}
