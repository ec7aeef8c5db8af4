//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"islegen/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gen, err := cfg.Generator()
	if err != nil {
		log.Fatal(err)
	}
	seed := cfg.StartSeed(gen)
	if err := gen.Reset(seed); err != nil {
		log.Fatalf("generate %s: %v", gen.Name(), err)
	}
	size := gen.Size()
	log.Printf("generated %s map %dx%d (seed %d)", gen.Name(), size.W, size.H, seed)

	game := app.New(gen, cfg.Scale, seed)

	ebiten.SetWindowTitle("islegen: " + gen.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
