package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"islegen/internal/app"
	"islegen/internal/classify"
	"islegen/internal/core"
	"islegen/internal/terrain"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 1, "number of consecutive seeds to generate, starting at -seed or the configured seed")
	flag.Parse()

	gen, err := cfg.Generator()
	if err != nil {
		log.Fatal(err)
	}
	if provider, ok := gen.(core.ParameterProvider); ok {
		printParams(os.Stdout, provider.Parameters())
	}

	if err := run(os.Stdout, gen, cfg.StartSeed(gen), *seeds); err != nil {
		log.Fatal(err)
	}
}

// run regenerates gen for n consecutive seeds from start and prints the
// category coverage of each map.
func run(w io.Writer, gen core.Generator, start int64, n int) error {
	for i := 0; i < n; i++ {
		if err := gen.Reset(start + int64(i)); err != nil {
			return fmt.Errorf("seed %d: %w", start+int64(i), err)
		}
		tg, ok := gen.(*terrain.Generator)
		if !ok {
			fmt.Fprintf(w, "seed %d: %s map has no categories\n", start+int64(i), gen.Name())
			continue
		}
		m := tg.Map()
		if m.Categories == nil {
			fmt.Fprintf(w, "seed %d: %s map has no categories\n", m.Seed, gen.Name())
			continue
		}
		printCoverage(w, m.Seed, m.Histogram())
	}
	return nil
}

func printParams(w io.Writer, snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		if g.Summary != "" {
			fmt.Fprintf(w, "%s (%s)\n", g.Name, g.Summary)
		} else {
			fmt.Fprintf(w, "%s\n", g.Name)
		}
		for _, p := range g.Params {
			fmt.Fprintf(w, "  %s=%s\n", p.Key, p.Value)
		}
	}
}

func printCoverage(w io.Writer, seed int64, counts map[classify.Category]int) {
	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Fprintf(w, "seed %d:", seed)
	for _, c := range classify.Categories {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[c]) * 100 / float64(total)
		}
		fmt.Fprintf(w, " %s %.1f%%", c, pct)
	}
	fmt.Fprintln(w)
}
