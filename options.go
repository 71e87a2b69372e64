package atrament

import "time"

// Option configures a Canvas during creation.
//
// Example:
//
//	// Default software surface
//	c := atrament.NewCanvas(800, 600)
//
//	// Custom surface (dependency injection)
//	c := atrament.NewCanvas(800, 600, atrament.WithSurface(mySurface))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	surface     Surface
	mode        Mode
	notify      Notifier
	recording   bool
	settleDelay time.Duration
	tolerance   uint8
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		mode:        ModeDraw,
		settleDelay: DefaultSettleDelay,
		tolerance:   DefaultFillTolerance,
	}
}

// WithSurface injects a custom drawing surface. The surface dimensions
// take precedence over the width and height passed to NewCanvas.
func WithSurface(s Surface) Option {
	return func(o *canvasOptions) {
		o.surface = s
	}
}

// WithMode sets the initial drawing mode.
func WithMode(m Mode) Option {
	return func(o *canvasOptions) {
		if m.valid() {
			o.mode = m
		}
	}
}

// WithNotifier installs the event callback.
func WithNotifier(n Notifier) Option {
	return func(o *canvasOptions) {
		o.notify = n
	}
}

// WithRecording enables stroke recording from the first stroke.
func WithRecording(on bool) Option {
	return func(o *canvasOptions) {
		o.recording = on
	}
}

// WithSettleDelay overrides the pause before a fill pass begins.
// Zero disables the deferral; tests use this.
func WithSettleDelay(d time.Duration) Option {
	return func(o *canvasOptions) {
		if d >= 0 {
			o.settleDelay = d
		}
	}
}

// WithFillTolerance overrides the per-channel color-match delta used by
// the fill engine.
func WithFillTolerance(tol uint8) Option {
	return func(o *canvasOptions) {
		o.tolerance = tol
	}
}
