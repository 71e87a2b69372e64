package atrament

// Pointer tracks the current and previous pointer position and the
// down/up flag for one input device.
//
// Previous always holds the last smoothed output point produced by the
// stroke renderer, never the last raw input sample. Distance and delta
// calculations must chain smoothed-to-smoothed or the adaptive
// thickness oscillates.
type Pointer struct {
	current  Point
	previous Point
	down     bool
}

// Set updates the current position unconditionally.
func (p *Pointer) Set(x, y float64) {
	p.current = Pt(x, y)
}

// Press marks the pointer down and anchors the previous point at the
// current position, defining the starting anchor of a new path.
func (p *Pointer) Press() {
	p.previous = p.current
	p.down = true
}

// Release marks the pointer up.
func (p *Pointer) Release() {
	p.down = false
}

// Down reports whether the pointer is pressed.
func (p *Pointer) Down() bool {
	return p.down
}

// Position returns the current raw position.
func (p *Pointer) Position() Point {
	return p.current
}

// Previous returns the last smoothed output point.
func (p *Pointer) Previous() Point {
	return p.previous
}

// SetPrevious stores a processed (smoothed) point as the new previous
// point. Only renderer output should be passed here.
func (p *Pointer) SetPrevious(pt Point) {
	p.previous = pt
}
