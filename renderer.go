// renderer.go - Pixel-span scheduling and the goroutine worker pool.
//
// Each worker owns a private *rand.Rand seeded independently of the
// others, following the same per-unit-of-work goroutine shape the
// emulator's coprocessor workers use for their instruction-step
// spans, generalized here to a span of framebuffer pixels.

package main

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

type pixelCoord struct {
	i, j int
}

// Renderer drives a full-frame render across a fixed worker pool,
// exposing a live framebuffer snapshot and progress counter so a
// display host can poll it while the render is in flight.
type Renderer struct {
	camera  *Camera
	world   Hittable
	workers int

	width, height int

	mu     sync.RWMutex
	pixels []byte // tightly packed RGB, row-major

	done          int32
	renderedCount int32
	totalPixels   int32
}

// NewRenderer allocates a black framebuffer sized to the camera and
// prepares the worker pool. workers <= 0 selects hardware thread count
// minus 2, floored at 1, leaving headroom for the main goroutine and
// the display host's own goroutine.
func NewRenderer(camera *Camera, world Hittable, workers int) *Renderer {
	w := camera.ImageWidth
	h := camera.ImageHeight()

	if workers <= 0 {
		workers = runtime.NumCPU() - 2
		if workers < 1 {
			workers = 1
		}
	}

	r := &Renderer{
		camera:      camera,
		world:       world,
		workers:     workers,
		width:       w,
		height:      h,
		pixels:      make([]byte, w*h*3),
		totalPixels: int32(w * h),
	}
	return r
}

// buildSchedule produces every pixel coordinate in a deterministic
// order and then shuffles it, so that each worker's contiguous span
// covers a scattered sample of the frame rather than a single
// horizontal band. That keeps early progress visually representative
// of the whole image instead of a top stripe.
func buildSchedule(width, height int, rng *rand.Rand) []pixelCoord {
	pixels := make([]pixelCoord, 0, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			pixels = append(pixels, pixelCoord{i: i, j: j})
		}
	}
	rng.Shuffle(len(pixels), func(a, b int) {
		pixels[a], pixels[b] = pixels[b], pixels[a]
	})
	return pixels
}

// spans partitions n items across workerCount contiguous ranges. Any
// remainder from integer division is folded into the final span so
// every pixel is scheduled exactly once.
func spans(n, workerCount int) [][2]int {
	if workerCount > n {
		workerCount = n
	}
	base := n / workerCount
	out := make([][2]int, workerCount)
	start := 0
	for w := 0; w < workerCount; w++ {
		end := start + base
		if w == workerCount-1 {
			end = n
		}
		out[w] = [2]int{start, end}
		start = end
	}
	return out
}

// Render runs the full frame synchronously, splitting the shuffled
// pixel schedule into one contiguous span per worker goroutine and
// waiting for all of them to finish.
func (r *Renderer) Render(scheduleSeed int64) {
	scheduleRng := rand.New(rand.NewSource(scheduleSeed))
	schedule := buildSchedule(r.width, r.height, scheduleRng)

	var g errgroup.Group
	for idx, span := range spans(len(schedule), r.workers) {
		start, end := span[0], span[1]
		if start == end {
			continue
		}
		workerSeed := scheduleSeed + 1 + int64(idx)
		g.Go(func() error {
			r.renderSpan(schedule[start:end], rand.New(rand.NewSource(workerSeed)))
			return nil
		})
	}
	_ = g.Wait() // renderSpan never errors; retained for the cancellation-aware shape

	atomic.StoreInt32(&r.done, 1)
}

// renderSpan accumulates SamplesPerPixel rays per pixel, writes the
// gamma-corrected result into the shared framebuffer under lock, and
// advances the shared progress counter one pixel at a time.
func (r *Renderer) renderSpan(coords []pixelCoord, rng *rand.Rand) {
	for _, pc := range coords {
		accum := Color{}
		for s := 0; s < r.camera.SamplesPerPixel; s++ {
			ray := r.camera.GetRay(pc.i, pc.j, rng)
			accum = accum.Add(RayColor(ray, r.camera.MaxDepth, r.world, rng))
		}
		rgb := r.camera.PixelBytes(accum)

		offset := (pc.j*r.width + pc.i) * 3
		r.mu.Lock()
		r.pixels[offset] = rgb[0]
		r.pixels[offset+1] = rgb[1]
		r.pixels[offset+2] = rgb[2]
		r.mu.Unlock()

		atomic.AddInt32(&r.renderedCount, 1)
	}
}

// Snapshot returns a copy of the current framebuffer state, safe to
// read while a render is in progress.
func (r *Renderer) Snapshot() []byte {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]byte, len(r.pixels))
	copy(out, r.pixels)
	return out
}

func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

// Done reports whether every pixel has been written.
func (r *Renderer) Done() bool {
	return atomic.LoadInt32(&r.done) != 0
}

// Progress returns the completion fraction in [0, 1].
func (r *Renderer) Progress() float64 {
	total := atomic.LoadInt32(&r.totalPixels)
	if total == 0 {
		return 1
	}
	return float64(atomic.LoadInt32(&r.renderedCount)) / float64(total)
}
