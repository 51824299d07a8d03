// display.go - The narrow surface a render host needs: a way to pull
// a frame snapshot and progress, and to know when the render is over.
// Adapted from the emulator's VideoOutput/FrameSnapshot shape, pared
// down to what a read-only render viewer actually needs (no palette,
// sprite, texture, or keyboard-input concerns apply here).

package main

import "time"

// FrameSnapshot is a point-in-time copy of the framebuffer, safe to
// hand to a renderer (ebiten's Draw, or nothing at all in headless
// mode) without racing the render workers.
type FrameSnapshot struct {
	RGB       []byte
	Width     int
	Height    int
	Timestamp time.Time
}

// DisplayHost drives the user-visible side of a render: showing
// progress and, when not running headless, a live preview window.
type DisplayHost interface {
	Start() error
	Close() error

	// PumpFrame hands the host a fresh snapshot and completion
	// fraction; called repeatedly from the polling loop that drives
	// the render to completion.
	PumpFrame(snap FrameSnapshot, progress float64, done bool)
}

// NewDisplayHost returns the host appropriate for this build: a live
// preview window when built without the headless tag, or a silent
// host that only prints progress when built with it. The two
// implementations live in display_ebiten.go and display_headless.go,
// gated by matching build tags.
func NewDisplayHost() DisplayHost {
	return newDisplayHost()
}
