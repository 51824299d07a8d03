//go:build !headless

// display_ebiten.go - Live preview window, adapted from the
// emulator's ebiten video backend: same goroutine-plus-mutex frame
// handoff, same Draw/Layout shape, trimmed to a read-only viewer with
// a progress-percentage overlay instead of keyboard/clipboard input.

package main

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type ebitenDisplayHost struct {
	mu       sync.RWMutex
	width    int
	height   int
	rgba     []byte
	progress float64
	done     bool

	window *ebiten.Image
	ready  chan struct{}
}

func newDisplayHost() DisplayHost {
	return &ebitenDisplayHost{ready: make(chan struct{}, 1)}
}

func (e *ebitenDisplayHost) Start() error {
	ebiten.SetWindowTitle("path tracer preview")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)

	go func() {
		if err := ebiten.RunGame(e); err != nil {
			fmt.Printf("display error: %v\n", err)
		}
	}()
	return nil
}

func (e *ebitenDisplayHost) Close() error {
	return nil
}

func (e *ebitenDisplayHost) PumpFrame(snap FrameSnapshot, progress float64, done bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.width != snap.Width || e.height != snap.Height {
		e.width = snap.Width
		e.height = snap.Height
		ebiten.SetWindowSize(e.width, e.height)
		e.window = nil
	}

	rgba := make([]byte, snap.Width*snap.Height*4)
	for px := 0; px < snap.Width*snap.Height; px++ {
		rgba[px*4] = snap.RGB[px*3]
		rgba[px*4+1] = snap.RGB[px*3+1]
		rgba[px*4+2] = snap.RGB[px*3+2]
		rgba[px*4+3] = 0xff
	}
	e.rgba = rgba
	e.progress = progress
	e.done = done
}

func (e *ebitenDisplayHost) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return nil
}

func (e *ebitenDisplayHost) Draw(screen *ebiten.Image) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.width == 0 || e.height == 0 {
		return
	}
	if e.window == nil {
		e.window = ebiten.NewImage(e.width, e.height)
	}
	e.window.WritePixels(e.rgba)
	screen.DrawImage(e.window, nil)

	label := fmt.Sprintf("%.1f%%", e.progress*100)
	if e.done {
		label = "done"
	}
	overlay := renderOverlayText(label)
	screen.DrawImage(overlay, nil)
}

// renderOverlayText rasterizes label into a small RGBA strip using the
// standard bitmap face, then wraps it for ebiten to composite.
func renderOverlayText(label string) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, 120, 20))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 14),
	}
	drawer.DrawString(label)
	return ebiten.NewImageFromImage(img)
}

func (e *ebitenDisplayHost) Layout(_, _ int) (int, int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.width == 0 || e.height == 0 {
		return 1, 1
	}
	return e.width, e.height
}
