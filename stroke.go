package atrament

// Tuning constants for the smoothing filter and adaptive thickness.
// These are the reference values the visual behavior was calibrated
// against; weight and smoothing are configurable, the rest are not.
const (
	minLineThickness   = 1.0
	lineThicknessRange = 53.0
	thicknessIncrement = 0.5
	maxSmoothingFactor = 0.87

	// DefaultSmoothing is the base smoothing factor for new canvases.
	DefaultSmoothing = 0.85
	// DefaultWeight is the base stroke weight for new canvases.
	DefaultWeight = 2.0
	// WeightSpread is how far adaptive thickness may rise above the
	// base weight.
	WeightSpread = 7.0
)

// StrokeStyle holds the stroke configuration and the thickness
// convergence state. It is owned exclusively by the StrokeRenderer.
type StrokeStyle struct {
	Color     RGBA
	Smoothing float64
	Adaptive  bool

	// BaseWeight is the configured weight; MaxWeight is its adaptive
	// upper bound (BaseWeight + WeightSpread).
	BaseWeight float64
	MaxWeight  float64

	// CurrentThickness converges toward TargetThickness by one fixed
	// increment per sample. It is never assigned directly from the
	// target, which keeps speed changes from producing visible kinks.
	CurrentThickness float64
	TargetThickness  float64
}

// StrokeRenderer turns raw pointer samples into smoothed curve segments
// on a Surface.
type StrokeRenderer struct {
	surface Surface
	style   StrokeStyle
}

func newStrokeRenderer(surface Surface) *StrokeRenderer {
	return &StrokeRenderer{
		surface: surface,
		style: StrokeStyle{
			Color:            Black,
			Smoothing:        DefaultSmoothing,
			Adaptive:         true,
			BaseWeight:       DefaultWeight,
			MaxWeight:        DefaultWeight + WeightSpread,
			CurrentThickness: DefaultWeight,
			TargetThickness:  DefaultWeight,
		},
	}
}

// Style returns a copy of the current stroke style.
func (r *StrokeRenderer) Style() StrokeStyle {
	return r.style
}

// setWeight sets the base weight and resets the thickness state.
func (r *StrokeRenderer) setWeight(w float64) {
	r.style.BaseWeight = w
	r.style.MaxWeight = w + WeightSpread
	r.style.CurrentThickness = w
	r.style.TargetThickness = w
}

// smoothingFactor computes the effective smoothing for one sample.
// Faster pointer motion (larger rawDist) increases smoothing, which
// stabilizes fast strokes; the ceiling keeps the smoothed point from
// lagging so far behind that it never arrives.
func (r *StrokeRenderer) smoothingFactor(rawDist float64) float64 {
	factor := r.style.Smoothing + (rawDist-60)/3000
	if factor > maxSmoothingFactor {
		factor = maxSmoothingFactor
	}
	return factor
}

// ProcessSample consumes one raw pointer sample together with the
// previous smoothed point, draws one curve segment, and returns the new
// smoothed point. The caller must store the returned point as the new
// previous point.
func (r *StrokeRenderer) ProcessSample(x, y float64, prev Point) Point {
	raw := Pt(x, y)
	rawDist := raw.Distance(prev)

	// Exponential lag toward the raw point.
	factor := r.smoothingFactor(rawDist)
	proc := Pt(
		x-(x-prev.X)*factor,
		y-(y-prev.Y)*factor,
	)

	// Thickness follows the smoothed distance, not the raw one; the raw
	// distance includes jitter the filter just removed.
	dist := proc.Distance(prev)

	if r.style.Adaptive {
		target := (dist-minLineThickness)/lineThicknessRange*
			(r.style.MaxWeight-r.style.BaseWeight) + r.style.BaseWeight
		if target > r.style.MaxWeight {
			target = r.style.MaxWeight
		}
		r.style.TargetThickness = target

		switch {
		case r.style.CurrentThickness < target:
			r.style.CurrentThickness += thicknessIncrement
		case r.style.CurrentThickness > target:
			r.style.CurrentThickness -= thicknessIncrement
		}
		if r.style.CurrentThickness > r.style.MaxWeight {
			r.style.CurrentThickness = r.style.MaxWeight
		}
	} else {
		r.style.CurrentThickness = r.style.BaseWeight
		r.style.TargetThickness = r.style.BaseWeight
	}

	r.surface.SetLineWidth(r.style.CurrentThickness)
	r.surface.SetStrokeColor(r.style.Color)

	control := prev.Midpoint(raw)
	r.surface.BeginPath()
	r.surface.MoveTo(prev.X, prev.Y)
	r.surface.QuadraticCurveTo(control.X, control.Y, proc.X, proc.Y)
	r.surface.Stroke()

	return proc
}
