//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The preview build of islegen requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/islegen` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless summary use `go run ./cmd/coverage`.")
	os.Exit(2)
}
