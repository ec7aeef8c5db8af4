//go:build ebiten

package app

import (
	"log"
	"time"

	"islegen/internal/core"
	"islegen/internal/render"
	"islegen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a map generator to the ebiten.Game interface.
type Game struct {
	gen     core.Generator
	painter *render.GridPainter
	overlay *ui.Overlay

	scale int
	seed  int64
	dirty bool
}

// New constructs a Game for the provided generator. The generator must
// already have been Reset.
func New(gen core.Generator, scale int, seed int64) *Game {
	size := gen.Size()
	overlay := ui.NewOverlay(gen, scale)
	overlay.SetSeed(seed)
	return &Game{
		gen:     gen,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: overlay,
		scale:   scale,
		seed:    seed,
		dirty:   true,
	}
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.gen.Reset(seed); err != nil {
		log.Printf("regenerate seed %d: %v", seed, err)
		return
	}
	g.seed = seed
	g.overlay.SetSeed(seed)
	g.dirty = true
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.overlay.Update()
	return nil
}

// Draw renders the current map.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.painter.Upload(g.gen.Pixels())
		g.dirty = false
	}
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.gen.Size()
	return s.W * g.scale, s.H * g.scale
}
