// main.go - CLI entry point: loads config, builds the scene, renders
// it across a worker pool, and drives a display host until done.

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (optional)")
	outPath := flag.String("o", "", "Output JPEG path (overrides config)")
	width := flag.Int("width", 0, "Image width in pixels (overrides config)")
	samples := flag.Int("samples", 0, "Samples per pixel (overrides config)")
	workers := flag.Int("workers", 0, "Worker goroutines (overrides config; 0 in both = CPU count minus 2, at least 1)")
	seed := flag.Int64("seed", 0, "Random seed for the pixel schedule (overrides config)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: raytrace [options]\n\nRenders the book-cover scene to a JPEG file.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var cfg RenderConfig
	if *configPath != "" {
		cfg = LoadConfig(*configPath)
	} else {
		cfg = DefaultRenderConfig()
	}

	if *outPath != "" {
		cfg.OutputPath = *outPath
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *samples > 0 {
		cfg.Samples = *samples
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	sceneRng := rand.New(rand.NewSource(cfg.Seed))
	world := BuildBookCoverScene(sceneRng)

	camera := DefaultCamera(cfg)
	camera.Init()

	renderer := NewRenderer(camera, world, cfg.Workers)

	host := NewDisplayHost()
	if err := host.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error starting display: %v\n", err)
		os.Exit(1)
	}
	defer host.Close()

	renderDone := make(chan struct{})
	go func() {
		renderer.Render(cfg.Seed)
		close(renderDone)
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-renderDone:
			break loop
		case <-ticker.C:
			pumpFrame(host, renderer)
		}
	}
	pumpFrame(host, renderer)

	if err := WriteImage(cfg.OutputPath, renderer.Snapshot(), renderer.Width(), renderer.Height()); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", cfg.OutputPath, err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s (%dx%d)\n", cfg.OutputPath, renderer.Width(), renderer.Height())
}

func pumpFrame(host DisplayHost, renderer *Renderer) {
	snap := FrameSnapshot{
		RGB:       renderer.Snapshot(),
		Width:     renderer.Width(),
		Height:    renderer.Height(),
		Timestamp: time.Now(),
	}
	host.PumpFrame(snap, renderer.Progress(), renderer.Done())
}
