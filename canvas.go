package atrament

import (
	"fmt"
	"math"
	"sync"
)

// Canvas is a freehand sketch surface. It owns the pointer tracker, the
// stroke renderer and the fill engine, and routes host input samples to
// whichever of them the current mode selects.
//
// A Canvas expects its input methods to be driven from a single
// goroutine (the host's input loop). Fill passes run on an internal
// goroutine; an internal lock serializes each pass against stroke
// drawing and pixel sampling, so strokes drawn while a pass is in
// flight are never lost. Direct access to the pixel buffer via
// [Surface.Pix] is not covered by the lock; use [Canvas.Wait] first
// when fills may be pending.
type Canvas struct {
	surface  Surface
	pointer  Pointer
	renderer *StrokeRenderer
	fills    *FillEngine

	// surfMu guards the surface's pixel buffer: held while a stroke
	// segment rasterizes, while a pixel is sampled, and for the whole
	// of a fill pass (snapshot through commit).
	surfMu sync.Mutex

	mode      Mode
	notify    Notifier
	recording bool
	rec       *recorder
}

// NewCanvas creates a canvas with the given dimensions, drawing on a
// software surface unless one is injected via WithSurface.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	surface := options.surface
	if surface == nil {
		surface = NewSoftwareSurface(width, height)
	}

	c := &Canvas{
		surface:   surface,
		renderer:  newStrokeRenderer(surface),
		notify:    options.notify,
		recording: options.recording,
	}
	c.fills = newFillEngine(
		surface,
		&c.surfMu,
		options.notify,
		options.settleDelay,
		options.tolerance,
	)

	// Entering the initial mode applies its compositing side effect.
	c.mode = ModeDisabled
	_ = c.SetMode(options.mode)

	return c
}

// Surface returns the canvas's drawing surface.
func (c *Canvas) Surface() Surface {
	return c.surface
}

// Mode returns the current drawing mode.
func (c *Canvas) Mode() Mode {
	return c.mode
}

// SetMode switches the drawing mode. Compositing behavior is part of
// the transition: erase mode composites destination-out, every other
// mode source-over.
func (c *Canvas) SetMode(m Mode) error {
	if !m.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}

	c.mode = m
	if m == ModeErase {
		c.surface.SetComposite(CompositeDestinationOut)
	} else {
		c.surface.SetComposite(CompositeSourceOver)
	}
	return nil
}

// Color returns the current stroke color.
func (c *Canvas) Color() RGBA {
	return c.renderer.style.Color
}

// SetColor sets the stroke (and fill) color from a hex string.
func (c *Canvas) SetColor(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.renderer.style.Color = col
	return nil
}

// SetColorRGBA sets the stroke (and fill) color directly.
func (c *Canvas) SetColorRGBA(col RGBA) {
	c.renderer.style.Color = col
}

// Weight returns the configured base stroke weight.
func (c *Canvas) Weight() float64 {
	return c.renderer.style.BaseWeight
}

// SetWeight sets the base stroke weight and resets the adaptive
// thickness state.
func (c *Canvas) SetWeight(w float64) error {
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, w)
	}
	c.renderer.setWeight(w)
	return nil
}

// Smoothing returns the configured base smoothing factor.
func (c *Canvas) Smoothing() float64 {
	return c.renderer.style.Smoothing
}

// SetSmoothing sets the base smoothing factor in (0, 1).
func (c *Canvas) SetSmoothing(s float64) error {
	if !(s > 0 && s < 1) {
		return fmt.Errorf("%w: %v", ErrInvalidSmoothing, s)
	}
	c.renderer.style.Smoothing = s
	return nil
}

// AdaptiveStroke reports whether adaptive thickness is enabled.
func (c *Canvas) AdaptiveStroke() bool {
	return c.renderer.style.Adaptive
}

// SetAdaptiveStroke enables or disables adaptive thickness.
func (c *Canvas) SetAdaptiveStroke(on bool) {
	c.renderer.style.Adaptive = on
}

// SetRecording enables or disables stroke recording for subsequent
// strokes.
func (c *Canvas) SetRecording(on bool) {
	c.recording = on
}

// StrokeStyle returns a copy of the renderer's stroke style state.
func (c *Canvas) StrokeStyle() StrokeStyle {
	return c.renderer.Style()
}

// PointerDown feeds a pointer-press sample. In fill mode it submits a
// fill request; in draw or erase mode it begins a stroke.
func (c *Canvas) PointerDown(x, y float64) error {
	if err := checkCoord(x, y); err != nil {
		return err
	}

	c.pointer.Set(x, y)

	switch {
	case c.mode == ModeFill:
		c.fills.Fill(x, y, c.renderer.style.Color)
	case c.mode.strokes():
		c.BeginStroke(x, y)
	}
	return nil
}

// PointerMove feeds a pointer-move sample. While the pointer is down in
// a stroking mode, the sample is forwarded to the stroke renderer.
func (c *Canvas) PointerMove(x, y float64) error {
	if err := checkCoord(x, y); err != nil {
		return err
	}

	c.pointer.Set(x, y)

	if c.pointer.Down() && c.mode.strokes() {
		c.Sample(x, y)
	}
	return nil
}

// PointerUp feeds a pointer-release sample. In pick mode it samples the
// pixel under the pointer; in a stroking mode it ends the stroke.
func (c *Canvas) PointerUp(x, y float64) error {
	if err := checkCoord(x, y); err != nil {
		return err
	}

	c.pointer.Set(x, y)

	switch {
	case c.mode == ModePick:
		c.surfMu.Lock()
		picked := c.surface.Pix().GetPixel(int(x), int(y))
		c.surfMu.Unlock()
		c.emit(PickEvent{X: x, Y: y, Color: picked})
	case c.pointer.Down() && c.mode.strokes():
		c.EndStroke(x, y)
	}
	return nil
}

// BeginStroke opens a new stroke at the anchor point. No sample is
// processed before BeginStroke or after EndStroke.
func (c *Canvas) BeginStroke(x, y float64) {
	c.pointer.Set(x, y)
	c.pointer.Press()

	if c.recording {
		c.rec = newRecorder()
		c.rec.add(Pt(x, y))
	}

	c.emit(StrokeStartEvent{X: x, Y: y})
}

// Sample feeds one raw stroke sample through the renderer and stores the
// smoothed output as the new previous point. The segment rasterizes
// under the surface lock so it cannot interleave with a fill commit.
func (c *Canvas) Sample(x, y float64) Point {
	c.surfMu.Lock()
	proc := c.renderer.ProcessSample(x, y, c.pointer.Previous())
	c.surfMu.Unlock()
	c.pointer.SetPrevious(proc)

	if c.rec != nil {
		c.rec.add(Pt(x, y))
	}
	return proc
}

// EndStroke closes the stroke, emits the recorded stroke if recording,
// and clears the per-stroke state.
func (c *Canvas) EndStroke(x, y float64) {
	c.pointer.Set(x, y)
	c.pointer.Release()
	c.surface.ClosePath()

	c.emit(StrokeEndEvent{X: x, Y: y})

	if c.rec != nil {
		c.rec.add(Pt(x, y))
		stroke := c.rec.finish(c.mode, c.renderer.style)
		c.rec = nil
		c.emit(StrokeRecordedEvent{Stroke: stroke})
	}
}

// Fill submits a flood-fill request seeded at (x, y) regardless of the
// current mode.
func (c *Canvas) Fill(x, y float64) error {
	if err := checkCoord(x, y); err != nil {
		return err
	}
	c.fills.Fill(x, y, c.renderer.style.Color)
	return nil
}

// Wait blocks until all pending fill passes have committed.
func (c *Canvas) Wait() {
	c.fills.Wait()
}

func (c *Canvas) emit(ev Event) {
	if c.notify != nil {
		c.notify(ev)
	}
}

func checkCoord(x, y float64) error {
	if !Pt(x, y).IsFinite() {
		Logger().Warn("rejected input sample", "x", x, "y", y)
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinate, x, y)
	}
	return nil
}
