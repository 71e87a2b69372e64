package atrament

import "errors"

// Sentinel errors returned for malformed arguments. They are raised
// synchronously at the point of the call and never recovered internally.
var (
	// ErrInvalidCoordinate indicates a NaN or infinite pointer coordinate.
	ErrInvalidCoordinate = errors.New("atrament: invalid coordinate")

	// ErrInvalidWeight indicates a non-positive or non-finite stroke weight.
	ErrInvalidWeight = errors.New("atrament: invalid weight")

	// ErrInvalidSmoothing indicates a smoothing factor outside (0, 1).
	ErrInvalidSmoothing = errors.New("atrament: invalid smoothing factor")

	// ErrInvalidColor indicates a malformed color string.
	ErrInvalidColor = errors.New("atrament: invalid color")

	// ErrInvalidMode indicates a mode value outside the closed variant.
	ErrInvalidMode = errors.New("atrament: invalid mode")
)
