package atrament

import (
	"sync"
	"time"

	"github.com/lmjh/atrament/internal/flood"
)

// DefaultSettleDelay is the pause before a fill pass begins, giving any
// in-flight surface draws time to commit first. It is a bounded
// deferral, not unbounded queuing.
const DefaultSettleDelay = 100 * time.Millisecond

// DefaultFillTolerance is the per-channel color-match delta used to
// absorb anti-aliased edge pixels at region boundaries.
const DefaultFillTolerance = 32

// fillRequest captures everything a pass needs at request time: the
// seed, the color sampled at the seed, and the fill color and blend
// weight. Queued requests keep the submission-time values, not the
// values at execution time, so a pass never reads shared state from the
// drain goroutine.
type fillRequest struct {
	seed  Point
	start flood.Color
	fill  flood.Color
	alpha uint8
}

// FillEngine runs flood-fill passes over a surface. Passes are strictly
// serialized; requests submitted while a pass is in flight queue FIFO
// and are never dropped. Submission never blocks the caller.
//
// Passes run on a drain goroutine; surfMu serializes each pass's
// snapshot and commit against host-side drawing on the same buffer.
type FillEngine struct {
	surface     Surface
	surfMu      *sync.Mutex
	notify      Notifier
	settleDelay time.Duration
	tolerance   uint8

	mu      sync.Mutex
	queue   []fillRequest
	running bool
	wg      sync.WaitGroup
}

func newFillEngine(surface Surface, surfMu *sync.Mutex, notify Notifier, settleDelay time.Duration, tolerance uint8) *FillEngine {
	return &FillEngine{
		surface:     surface,
		surfMu:      surfMu,
		notify:      notify,
		settleDelay: settleDelay,
		tolerance:   tolerance,
	}
}

// Fill requests a flood fill seeded at (x, y), painting with fill. The
// color at the seed and the blend weight are sampled now; the pass
// itself runs after the settle delay, or after all earlier passes when
// one is already in flight.
func (e *FillEngine) Fill(x, y float64, fill RGBA) {
	seed := Pt(x, y)

	e.surfMu.Lock()
	start := toFloodColor(e.surface.Pix().GetPixel(int(seed.X), int(seed.Y)))
	alpha := fillAlpha(e.surface.GlobalAlpha())
	e.surfMu.Unlock()

	req := fillRequest{
		seed:  seed,
		start: start,
		fill:  toFloodColor(fill),
		alpha: alpha,
	}

	e.emit(FillStartEvent{X: x, Y: y})

	e.mu.Lock()
	if e.running {
		e.queue = append(e.queue, req)
		Logger().Debug("fill queued", "x", x, "y", y, "depth", len(e.queue))
		e.mu.Unlock()
		return
	}
	e.running = true
	e.wg.Add(1)
	e.mu.Unlock()

	go e.drain(req)
}

// Wait blocks until every submitted fill pass has committed and the
// engine is idle.
func (e *FillEngine) Wait() {
	e.wg.Wait()
}

// drain runs the first pass after the settle delay, then keeps popping
// queued requests until the queue is empty. An explicit loop rather than
// rescheduling per request keeps the call depth flat for long queues.
func (e *FillEngine) drain(req fillRequest) {
	defer e.wg.Done()

	if e.settleDelay > 0 {
		time.Sleep(e.settleDelay)
	}

	for {
		e.runPass(req)
		e.emit(FillEndEvent{})

		e.mu.Lock()
		if len(e.queue) == 0 {
			e.running = false
			e.mu.Unlock()
			return
		}
		req = e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()
	}
}

// runPass executes one flood-fill pass: snapshot the buffer, fill the
// working copy, commit it back in a single write. The surface lock is
// held from snapshot through commit, so a stroke drawn while the pass
// is in flight either lands before the snapshot or after the commit and
// is never overwritten. A seed outside the buffer or a region already
// in the fill color completes without mutation.
func (e *FillEngine) runPass(req fillRequest) {
	started := time.Now()

	e.surfMu.Lock()
	w := e.surface.Width()
	h := e.surface.Height()

	buf := e.surface.Pix().Region(0, 0, w, h)
	mutated := flood.Fill(buf, w, h, int(req.seed.X), int(req.seed.Y), req.start, req.fill, e.tolerance, req.alpha)
	if mutated {
		e.surface.Pix().PutRegion(buf, 0, 0, w, h)
	}
	e.surfMu.Unlock()

	Logger().Debug("fill pass done",
		"x", req.seed.X, "y", req.seed.Y,
		"mutated", mutated,
		"duration", time.Since(started))
}

func (e *FillEngine) emit(ev Event) {
	if e.notify != nil {
		e.notify(ev)
	}
}

// fillAlpha derives the blend weight from the surface's global
// compositing opacity. Opacity is amplified so that moderately
// transparent surfaces still produce a solid-looking fill, saturating
// at fully opaque.
func fillAlpha(globalAlpha float64) uint8 {
	a := globalAlpha * 10 * 255
	if a > 255 {
		a = 255
	}
	if a < 0 {
		a = 0
	}
	return uint8(a)
}

func toFloodColor(c RGBA) flood.Color {
	return flood.Color{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}
