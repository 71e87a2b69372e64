package atrament

import (
	"github.com/lmjh/atrament/internal/path"
	"github.com/lmjh/atrament/internal/raster"
)

// CompositeOp selects how drawing operations combine with existing
// surface content.
type CompositeOp int

const (
	// CompositeSourceOver draws new content over existing content.
	CompositeSourceOver CompositeOp = iota
	// CompositeDestinationOut removes existing content where new content
	// is drawn. Erase mode uses this.
	CompositeDestinationOut
)

// Surface is the raster surface contract the core draws against.
// It exposes vector path stroking (line width and color are ambient
// state set before Stroke) and raw pixel region access.
//
// A Surface is owned by one Canvas and is not required to be safe for
// concurrent use; the Canvas holds a lock around stroke rasterization,
// pixel sampling and each fill pass (region snapshot through PutRegion
// commit), so at most one operation touches the buffer at a time.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	QuadraticCurveTo(cx, cy, x, y float64)
	Stroke()
	ClosePath()

	SetLineWidth(w float64)
	SetStrokeColor(c RGBA)
	SetComposite(op CompositeOp)
	SetGlobalAlpha(a float64)
	GlobalAlpha() float64

	Width() int
	Height() int
	Pix() *Pixmap
}

// SoftwareSurface is the default CPU-backed Surface implementation.
// It builds paths, flattens curve segments and strokes them into a
// Pixmap with round caps and joins.
type SoftwareSurface struct {
	pixmap     *Pixmap
	rasterizer *raster.Rasterizer

	elements    []path.Element
	lineWidth   float64
	strokeColor RGBA
	composite   CompositeOp
	globalAlpha float64
}

var _ Surface = (*SoftwareSurface)(nil)

// NewSoftwareSurface creates a software surface with the given dimensions.
func NewSoftwareSurface(width, height int) *SoftwareSurface {
	return &SoftwareSurface{
		pixmap:      NewPixmap(width, height),
		rasterizer:  raster.NewRasterizer(width, height),
		lineWidth:   1,
		strokeColor: Black,
		globalAlpha: 1,
	}
}

// NewSoftwareSurfaceFor creates a software surface drawing on an
// existing pixmap.
func NewSoftwareSurfaceFor(pm *Pixmap) *SoftwareSurface {
	return &SoftwareSurface{
		pixmap:      pm,
		rasterizer:  raster.NewRasterizer(pm.Width(), pm.Height()),
		lineWidth:   1,
		strokeColor: Black,
		globalAlpha: 1,
	}
}

// BeginPath starts a new empty path.
func (s *SoftwareSurface) BeginPath() {
	s.elements = s.elements[:0]
}

// MoveTo starts a new subpath at the given point.
func (s *SoftwareSurface) MoveTo(x, y float64) {
	s.elements = append(s.elements, path.MoveTo{Point: path.Point{X: x, Y: y}})
}

// LineTo adds a straight line to the current path.
func (s *SoftwareSurface) LineTo(x, y float64) {
	s.elements = append(s.elements, path.LineTo{Point: path.Point{X: x, Y: y}})
}

// QuadraticCurveTo adds a quadratic Bezier curve to the current path.
func (s *SoftwareSurface) QuadraticCurveTo(cx, cy, x, y float64) {
	s.elements = append(s.elements, path.QuadTo{
		Control: path.Point{X: cx, Y: cy},
		Point:   path.Point{X: x, Y: y},
	})
}

// Stroke rasterizes the current path with the ambient line width, color
// and composite operation. The path is preserved; BeginPath or
// ClosePath clears it.
func (s *SoftwareSurface) Stroke() {
	if len(s.elements) == 0 {
		return
	}

	flattened := path.Flatten(s.elements)
	points := make([]raster.Point, len(flattened))
	for i, p := range flattened {
		points[i] = raster.Point{X: p.X, Y: p.Y}
	}

	c := s.strokeColor
	c.A *= s.globalAlpha

	s.rasterizer.StrokePolyline(
		&blendTarget{pm: s.pixmap},
		points,
		s.lineWidth,
		raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A},
		compositeToRaster(s.composite),
	)
}

// ClosePath ends the current path.
func (s *SoftwareSurface) ClosePath() {
	s.elements = s.elements[:0]
}

// SetLineWidth sets the ambient stroke width in pixels.
func (s *SoftwareSurface) SetLineWidth(w float64) {
	s.lineWidth = w
}

// SetStrokeColor sets the ambient stroke color.
func (s *SoftwareSurface) SetStrokeColor(c RGBA) {
	s.strokeColor = c
}

// SetComposite sets the ambient composite operation.
func (s *SoftwareSurface) SetComposite(op CompositeOp) {
	s.composite = op
}

// SetGlobalAlpha sets the surface-wide compositing opacity in [0, 1].
func (s *SoftwareSurface) SetGlobalAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	s.globalAlpha = a
}

// GlobalAlpha returns the surface-wide compositing opacity.
func (s *SoftwareSurface) GlobalAlpha() float64 {
	return s.globalAlpha
}

// Width returns the surface width in pixels.
func (s *SoftwareSurface) Width() int {
	return s.pixmap.Width()
}

// Height returns the surface height in pixels.
func (s *SoftwareSurface) Height() int {
	return s.pixmap.Height()
}

// Pix returns the surface's pixel buffer.
func (s *SoftwareSurface) Pix() *Pixmap {
	return s.pixmap
}

func compositeToRaster(op CompositeOp) raster.CompositeOp {
	if op == CompositeDestinationOut {
		return raster.DestinationOut
	}
	return raster.SourceOver
}

// blendTarget adapts a Pixmap to the rasterizer's blending interface.
type blendTarget struct {
	pm *Pixmap
}

func (t *blendTarget) Width() int  { return t.pm.Width() }
func (t *blendTarget) Height() int { return t.pm.Height() }

// BlendPixel composites a color into a single pixel.
func (t *blendTarget) BlendPixel(x, y int, c raster.RGBA, op raster.CompositeOp) {
	if x < 0 || x >= t.pm.Width() || y < 0 || y >= t.pm.Height() {
		return
	}

	existing := t.pm.GetPixel(x, y)

	if op == raster.DestinationOut {
		// Remove destination coverage where the source is drawn.
		existing.A *= 1 - c.A
		t.pm.SetPixel(x, y, existing)
		return
	}

	srcA := c.A
	if srcA >= 1 {
		t.pm.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: 1})
		return
	}
	if srcA <= 0 {
		return
	}

	invSrcA := 1 - srcA
	outA := srcA + existing.A*invSrcA
	if outA <= 0 {
		t.pm.SetPixel(x, y, Transparent)
		return
	}

	outR := (c.R*srcA + existing.R*existing.A*invSrcA) / outA
	outG := (c.G*srcA + existing.G*existing.A*invSrcA) / outA
	outB := (c.B*srcA + existing.B*existing.A*invSrcA) / outA
	t.pm.SetPixel(x, y, RGBA{R: outR, G: outG, B: outB, A: outA})
}
