//go:build !ebiten

package main

import "errors"

func runWindow(*session) error {
	return errors.New("the windowed build of cruiser requires the ebiten build tag; " +
		"re-run with `go run -tags ebiten ./cmd/cruiser run` or use `cruiser headless`")
}
