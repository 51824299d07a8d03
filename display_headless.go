//go:build headless

// display_headless.go - No-op display host for headless builds,
// adapted from the emulator's HeadlessFrontend: every lifecycle call
// is a no-op except the one that matters here, printing progress.

package main

import "fmt"

type headlessDisplayHost struct{}

func newDisplayHost() DisplayHost {
	return &headlessDisplayHost{}
}

func (h *headlessDisplayHost) Start() error { return nil }
func (h *headlessDisplayHost) Close() error { return nil }

func (h *headlessDisplayHost) PumpFrame(_ FrameSnapshot, progress float64, done bool) {
	PrintProgress(progress)
	if done {
		fmt.Println()
	}
}
