// Package raster provides scanline rasterization for stroked polylines.
package raster

import "math"

// RGBA represents a color (internal copy to avoid import cycle).
// Components are in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// CompositeOp selects how rasterized pixels combine with the destination.
type CompositeOp int

const (
	// SourceOver draws the source color over the destination.
	SourceOver CompositeOp = iota
	// DestinationOut removes destination coverage where the source is
	// drawn. Used for erasing.
	DestinationOut
)

// Pixmap is the blending target interface (avoids import cycle).
// Implementations perform the per-pixel composite for the given op.
type Pixmap interface {
	Width() int
	Height() int
	BlendPixel(x, y int, c RGBA, op CompositeOp)
}

// Rasterizer performs scanline rasterization of polygons and thick lines.
type Rasterizer struct {
	width  int
	height int
	aet    *activeEdgeTable
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		aet:    newActiveEdgeTable(),
	}
}

// Fill rasterizes a closed polygon onto a pixmap using the non-zero
// winding rule. The point slice must end where it starts.
func (r *Rasterizer) Fill(pixmap Pixmap, points []Point, color RGBA, op CompositeOp) {
	if len(points) < 3 {
		return
	}

	edges := make([]Edge, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		p0 := points[i]
		p1 := points[i+1]

		// Horizontal edges never cross a scanline.
		if math.Abs(p1.Y-p0.Y) < 0.001 {
			continue
		}

		edges = append(edges, NewEdge(p0, p1))
	}

	if len(edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	yMinInt := int(math.Floor(yMin))
	yMaxInt := int(math.Ceil(yMax))

	if yMinInt < 0 {
		yMinInt = 0
	}
	if yMaxInt > pixmap.Height() {
		yMaxInt = pixmap.Height()
	}

	for y := yMinInt; y < yMaxInt; y++ {
		scanY := float64(y) + 0.5
		r.scanline(pixmap, edges, scanY, color, op)
	}
}

// scanline fills the spans of a single scanline.
func (r *Rasterizer) scanline(pixmap Pixmap, edges []Edge, y float64, color RGBA, op CompositeOp) {
	r.aet.clear()

	for i := range edges {
		if edges[i].y0 <= y && y < edges[i].y1 {
			r.aet.add(edges[i], y)
		}
	}

	if len(r.aet.edges) == 0 {
		return
	}

	r.aet.sort()

	winding := 0
	var x1 float64
	for _, e := range r.aet.edges {
		if winding == 0 {
			x1 = e.x
		}
		winding += e.dir
		if winding == 0 {
			r.fillSpan(pixmap, int(x1), int(e.x), int(y), color, op)
		}
	}
}

// fillSpan fills a horizontal span of pixels.
func (r *Rasterizer) fillSpan(pixmap Pixmap, x1, x2, y int, color RGBA, op CompositeOp) {
	if y < 0 || y >= pixmap.Height() {
		return
	}

	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > pixmap.Width() {
		x2 = pixmap.Width()
	}

	for x := x1; x < x2; x++ {
		pixmap.BlendPixel(x, y, color, op)
	}
}

// StrokePolyline rasterizes a thick polyline with round caps and joins.
// Each segment is drawn as a quad, with a disc stamped at every vertex so
// joins and endpoints are rounded.
func (r *Rasterizer) StrokePolyline(pixmap Pixmap, points []Point, lineWidth float64, color RGBA, op CompositeOp) {
	if len(points) == 0 {
		return
	}

	if lineWidth < 1 {
		lineWidth = 1
	}
	radius := lineWidth / 2

	for i := 0; i < len(points)-1; i++ {
		r.strokeLine(pixmap, points[i], points[i+1], lineWidth, color, op)
	}
	for _, p := range points {
		r.fillDisc(pixmap, p, radius, color, op)
	}
}

// strokeLine draws the rectangular body of a thick line segment.
func (r *Rasterizer) strokeLine(pixmap Pixmap, p0, p1 Point, width float64, color RGBA, op CompositeOp) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)

	if length < 0.001 {
		return
	}

	// Perpendicular unit vector, scaled to half width.
	nx := -dy / length
	ny := dx / length
	offset := width / 2

	quad := []Point{
		{X: p0.X + nx*offset, Y: p0.Y + ny*offset},
		{X: p0.X - nx*offset, Y: p0.Y - ny*offset},
		{X: p1.X - nx*offset, Y: p1.Y - ny*offset},
		{X: p1.X + nx*offset, Y: p1.Y + ny*offset},
	}
	quad = append(quad, quad[0])

	r.Fill(pixmap, quad, color, op)
}

// discSegments is the polygon resolution for round caps and joins.
const discSegments = 16

// fillDisc stamps a filled disc, approximated as a regular polygon.
func (r *Rasterizer) fillDisc(pixmap Pixmap, center Point, radius float64, color RGBA, op CompositeOp) {
	if radius < 0.5 {
		radius = 0.5
	}

	poly := make([]Point, 0, discSegments+1)
	for i := 0; i < discSegments; i++ {
		angle := 2 * math.Pi * float64(i) / discSegments
		poly = append(poly, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	poly = append(poly, poly[0])

	r.Fill(pixmap, poly, color, op)
}
