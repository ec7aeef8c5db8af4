//go:build ebiten

package ui

import (
	"islegen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay prints the seed and a readout of the cell under the cursor.
type Overlay struct {
	gen   core.Generator
	scale int
	seed  int64
	show  bool

	cursorX, cursorY int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(gen core.Generator, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{gen: gen, scale: scale, show: true}
}

// SetSeed records the seed shown in the header line.
func (o *Overlay) SetSeed(seed int64) { o.seed = seed }

// Update handles the toggle key and tracks the cursor.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
	mx, my := ebiten.CursorPosition()
	o.cursorX, o.cursorY = mx/o.scale, my/o.scale
}

// Draw renders the readout in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	ebitenutil.DebugPrint(screen, o.text())
}

func (o *Overlay) text() string {
	return Readout(o.gen, o.seed, o.cursorX, o.cursorY)
}
