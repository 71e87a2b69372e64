// Package flood implements a stack-based scanline flood fill over a raw
// RGBA pixel buffer.
package flood

// Color is an 8-bit RGBA pixel value.
type Color struct {
	R, G, B, A uint8
}

// Match reports whether the pixel at byte offset pos matches ref within a
// per-channel tolerance. A strict equality test would leave ragged
// boundaries on anti-aliased source art, so every channel is compared
// with an absolute delta instead.
func Match(pix []uint8, pos int, ref Color, tol uint8) bool {
	return within(pix[pos], ref.R, tol) &&
		within(pix[pos+1], ref.G, tol) &&
		within(pix[pos+2], ref.B, tol) &&
		within(pix[pos+3], ref.A, tol)
}

func within(a, b, tol uint8) bool {
	if a > b {
		return a-b <= tol
	}
	return b-a <= tol
}

// blendPixel composites the fill color over the pixel at byte offset pos.
// alpha is the blend weight in [0, 255], derived from the surface's
// global compositing opacity, so partially transparent fills composite
// instead of flatly overwriting.
func blendPixel(pix []uint8, pos int, fill Color, alpha uint8) {
	if alpha == 255 {
		pix[pos] = fill.R
		pix[pos+1] = fill.G
		pix[pos+2] = fill.B
		pix[pos+3] = 255
		return
	}

	srcA := float64(alpha) / 255
	dstA := float64(pix[pos+3]) / 255
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA <= 0 {
		pix[pos], pix[pos+1], pix[pos+2], pix[pos+3] = 0, 0, 0, 0
		return
	}

	blend := func(src, dst uint8) uint8 {
		v := (float64(src)*srcA + float64(dst)*dstA*invSrcA) / outA
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}

	pix[pos] = blend(fill.R, pix[pos])
	pix[pos+1] = blend(fill.G, pix[pos+1])
	pix[pos+2] = blend(fill.B, pix[pos+2])
	pix[pos+3] = uint8(outA * 255)
}

// seed is one pending column seed on the fill stack.
type seed struct {
	x, y int
}

// Fill flood-fills the 4-connected region of pixels matching start that
// contains (x, y), blending fill into each visited pixel. pix is a
// row-major RGBA buffer of w*h pixels and is mutated in place; callers
// that need atomic commit semantics pass a working copy.
//
// It reports whether any pixel was mutated. A seed outside the buffer,
// or a region already in the fill color at full opacity, is a no-op.
func Fill(pix []uint8, w, h, x, y int, start, fill Color, tol, alpha uint8) bool {
	if w <= 0 || h <= 0 || x < 0 || x >= w || y < 0 || y >= h {
		return false
	}

	// Filling a region that is already the target color would visit
	// every pixel for nothing.
	seedPos := (y*w + x) * 4
	if Match(pix, seedPos, fill, tol) && pix[seedPos+3] == 255 {
		return false
	}

	// Blending with a low weight can leave a pixel within tolerance of
	// the start color, so matching alone cannot mark progress. The
	// visited map guarantees each pixel is colored at most once.
	visited := make([]bool, w*h)
	stack := make([]seed, 0, 64)
	stack = append(stack, seed{x, y})
	mutated := false
	rowStride := w * 4

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Walk upward to the topmost matching pixel in this column.
		cy := s.y
		pos := (cy*w + s.x) * 4
		for cy >= 0 && !visited[cy*w+s.x] && Match(pix, pos, start, tol) {
			cy--
			pos -= rowStride
		}
		cy++
		pos += rowStride

		reachLeft := false
		reachRight := false

		// Walk downward, coloring the vertical run and seeding the
		// neighbor columns.
		for cy < h && !visited[cy*w+s.x] && Match(pix, pos, start, tol) {
			blendPixel(pix, pos, fill, alpha)
			visited[cy*w+s.x] = true
			mutated = true

			if s.x > 0 {
				if Match(pix, pos-4, start, tol) && !visited[cy*w+s.x-1] {
					if !reachLeft {
						stack = append(stack, seed{s.x - 1, cy})
						reachLeft = true
					}
				} else {
					// The run broke; the next matching pixel on
					// this side belongs to a new vertical run.
					reachLeft = false
				}
			}
			if s.x < w-1 {
				if Match(pix, pos+4, start, tol) && !visited[cy*w+s.x+1] {
					if !reachRight {
						stack = append(stack, seed{s.x + 1, cy})
						reachRight = true
					}
				} else {
					reachRight = false
				}
			}

			cy++
			pos += rowStride
		}
	}

	return mutated
}
