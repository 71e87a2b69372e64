// Package atrament turns a stream of pointer positions into rendered
// freehand strokes on a raster surface, and flood-fills contiguous color
// regions on that same surface.
//
// # Overview
//
// The package has two engineering cores. The stroke renderer smooths
// noisy pointer input with an exponential-lag filter whose strength
// adapts to drawing speed, and varies stroke thickness with speed by
// converging toward a target width one fixed increment per sample. The
// fill engine runs a stack-based scanline flood fill with
// tolerance-based color matching, serializing passes through a FIFO
// queue so requests submitted mid-pass are never lost.
//
// # Quick Start
//
//	c := atrament.NewCanvas(800, 600)
//	c.SetColor("#2e86de")
//
//	// Forward host pointer events:
//	c.PointerDown(100, 100)
//	c.PointerMove(120, 110)
//	c.PointerUp(140, 115)
//
//	// Flood fill:
//	c.SetMode(atrament.ModeFill)
//	c.PointerDown(200, 200)
//	c.Wait()
//
// # Architecture
//
//   - Public API: Canvas, Surface, StrokeRenderer, FillEngine, Pixmap
//   - Internal: raster (scanline stroking), path (curve flattening),
//     flood (scanline flood fill)
//
// Binding to a host input-event system, surface lifecycle and sizing,
// event fan-out and stroke serialization are left to the caller; the
// core consumes raw samples and produces notification events.
//
// # Coordinate System
//
// Canvas-local pixel coordinates: origin (0,0) at top-left, X increases
// right, Y increases down.
package atrament
