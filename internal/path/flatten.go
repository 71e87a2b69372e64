// Package path flattens curve segments into polylines for the rasterizer.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance from the true curve for flattening.
const Tolerance = 0.1

// Element represents one element of a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a straight line to a point.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve to a point.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isElement() {}

// Flatten converts a path with curves into a polyline.
func Flatten(elements []Element) []Point {
	var points []Point
	var current Point

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			points = append(points, current)

		case LineTo:
			current = e.Point
			points = append(points, current)

		case QuadTo:
			quad := flattenQuadratic(current, e.Control, e.Point, Tolerance)
			points = append(points, quad...)
			current = e.Point
		}
	}

	return points
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// flattenQuadratic flattens a quadratic Bezier curve into line segments.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64) []Point {
	var points []Point
	flattenQuadraticRec(p0, p1, p2, tolerance, &points)
	return points
}

// flattenQuadraticRec recursively subdivides a quadratic Bezier curve
// (de Casteljau) until the control point is within tolerance of the chord.
func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, points *[]Point) {
	dist := distanceToLine(p1, p0, p2)

	if dist < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, points)
	flattenQuadraticRec(q2, q1, p2, tolerance, points)
}

// distanceToLine returns the distance from point p to the line through a and b.
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	length := ab.Length()
	if length == 0 {
		return p.Distance(a)
	}

	// Perpendicular distance via the cross product.
	ap := p.Sub(a)
	cross := ab.X*ap.Y - ab.Y*ap.X
	return math.Abs(cross) / length
}
