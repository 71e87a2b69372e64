package atrament

// Mode is the drawing mode of a Canvas. It is a closed variant; entering
// a mode configures surface compositing as part of the transition.
type Mode int

const (
	// ModeDraw renders freehand strokes in the current color.
	ModeDraw Mode = iota
	// ModeErase removes surface content along the stroke.
	ModeErase
	// ModeFill flood-fills the region under the pointer.
	ModeFill
	// ModeDisabled ignores all pointer input.
	ModeDisabled
	// ModePick samples the color under the pointer on release.
	ModePick
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeErase:
		return "erase"
	case ModeFill:
		return "fill"
	case ModeDisabled:
		return "disabled"
	case ModePick:
		return "pick"
	default:
		return "unknown"
	}
}

// valid reports whether m is a member of the closed variant.
func (m Mode) valid() bool {
	return m >= ModeDraw && m <= ModePick
}

// strokes reports whether the mode renders path strokes.
func (m Mode) strokes() bool {
	return m == ModeDraw || m == ModeErase
}
