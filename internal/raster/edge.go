package raster

import "sort"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge represents a line segment for scanline rasterization.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int // winding direction: +1 or -1
}

// NewEdge creates a new edge from two points.
func NewEdge(p0, p1 Point) Edge {
	// Direction is determined before the swap so the non-zero winding
	// rule sees the original orientation.
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	return Edge{
		x0:  p0.X,
		y0:  p0.Y,
		x1:  p1.X,
		y1:  p1.Y,
		dir: dir,
	}
}

// XAtY calculates the x coordinate of the edge at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// activeEdge is an edge crossing the current scanline.
type activeEdge struct {
	x   float64
	dir int
}

// activeEdgeTable collects edges active at one scanline.
type activeEdgeTable struct {
	edges []activeEdge
}

func newActiveEdgeTable() *activeEdgeTable {
	return &activeEdgeTable{edges: make([]activeEdge, 0, 32)}
}

func (aet *activeEdgeTable) clear() {
	aet.edges = aet.edges[:0]
}

func (aet *activeEdgeTable) add(e Edge, y float64) {
	aet.edges = append(aet.edges, activeEdge{x: e.XAtY(y), dir: e.dir})
}

func (aet *activeEdgeTable) sort() {
	sort.Slice(aet.edges, func(i, j int) bool {
		return aet.edges[i].x < aet.edges[j].x
	})
}
