package core

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForEachRow calls fn for every row in [0, h), spreading rows across up to
// GOMAXPROCS goroutines. fn must only write state owned by its row.
func ForEachRow(h int, fn func(y int)) {
	if h <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		for y := 0; y < h; y++ {
			fn(y)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		y := y
		g.Go(func() error {
			fn(y)
			return nil
		})
	}
	_ = g.Wait()
}
