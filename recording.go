package atrament

import "time"

// StrokePoint is one recorded input sample with its elapsed time since
// the stroke started.
type StrokePoint struct {
	Point   Point
	Elapsed time.Duration
}

// RecordedStroke is an immutable snapshot of one finished stroke,
// built only when recording is enabled. The caller owns it once emitted.
type RecordedStroke struct {
	Points         []StrokePoint
	Mode           Mode
	Weight         float64
	Smoothing      float64
	Color          RGBA
	AdaptiveStroke bool
}

// recorder accumulates the points of the stroke in progress.
type recorder struct {
	start  time.Time
	points []StrokePoint
}

func newRecorder() *recorder {
	return &recorder{start: time.Now()}
}

// add appends a raw sample with its elapsed-time stamp.
func (r *recorder) add(p Point) {
	r.points = append(r.points, StrokePoint{
		Point:   p,
		Elapsed: time.Since(r.start),
	})
}

// finish builds the immutable stroke snapshot.
func (r *recorder) finish(mode Mode, style StrokeStyle) RecordedStroke {
	points := make([]StrokePoint, len(r.points))
	copy(points, r.points)
	return RecordedStroke{
		Points:         points,
		Mode:           mode,
		Weight:         style.BaseWeight,
		Smoothing:      style.Smoothing,
		Color:          style.Color,
		AdaptiveStroke: style.Adaptive,
	}
}
