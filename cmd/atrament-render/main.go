// Command atrament-render replays a scripted freehand gesture onto a
// canvas and writes the result as a PNG. It exercises the full pipeline:
// smoothed adaptive-thickness strokes, erase compositing, and scanline
// flood fill, optionally over a background image.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lmjh/atrament"
)

func main() {
	var (
		width      = flag.Int("width", 800, "canvas width")
		height     = flag.Int("height", 600, "canvas height")
		output     = flag.String("output", "sketch.png", "output file")
		background = flag.String("background", "", "optional background image")
		seed       = flag.Int64("seed", 1, "palette seed")
	)
	flag.Parse()

	c := atrament.NewCanvas(*width, *height, atrament.WithSettleDelay(0))

	if *background != "" {
		img, err := imaging.Open(*background)
		if err != nil {
			log.Fatalf("open background: %v", err)
		}
		img = imaging.Resize(img, *width, *height, imaging.Lanczos)
		pm := atrament.FromImage(img)
		c = atrament.NewCanvas(*width, *height,
			atrament.WithSettleDelay(0),
			atrament.WithSurface(atrament.NewSoftwareSurfaceFor(pm)))
	} else {
		c.Surface().Pix().Clear(atrament.White)
	}

	for i, col := range palette(*seed, 4) {
		c.SetColorRGBA(atrament.RGBA{R: col.R, G: col.G, B: col.B, A: 1})
		if err := c.SetWeight(3 + float64(i)*2); err != nil {
			log.Fatalf("set weight: %v", err)
		}
		drawWave(c, *width, *height, i)
	}

	// Close a loop and flood-fill its interior.
	c.SetColorRGBA(atrament.Black)
	if err := c.SetWeight(4); err != nil {
		log.Fatalf("set weight: %v", err)
	}
	drawLoop(c, float64(*width)*0.75, float64(*height)*0.3, 80)

	if err := c.SetMode(atrament.ModeFill); err != nil {
		log.Fatalf("set mode: %v", err)
	}
	if err := c.SetColor("#f6b93b"); err != nil {
		log.Fatalf("set color: %v", err)
	}
	if err := c.PointerDown(float64(*width)*0.75, float64(*height)*0.3); err != nil {
		log.Fatalf("fill: %v", err)
	}
	c.Wait()

	if err := imaging.Save(c.Surface().Pix().ToImage(), *output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("sketch saved to %s (%dx%d)", *output, *width, *height)
}

// palette generates n visually distinct warm colors.
func palette(seed int64, n int) []colorful.Color {
	colors := make([]colorful.Color, 0, n)
	for i := 0; i < n; i++ {
		h := math.Mod(float64(seed)*37+float64(i)*360/float64(n), 360)
		colors = append(colors, colorful.Hsv(h, 0.65, 0.85))
	}
	return colors
}

// drawWave replays a sine gesture through the pointer API so the
// smoothing filter and adaptive thickness see realistic sample spacing.
func drawWave(c *atrament.Canvas, width, height, phase int) {
	baseY := float64(height) * (0.55 + 0.1*float64(phase))
	amp := float64(height) * 0.06

	x0 := float64(width) * 0.1
	if err := c.PointerDown(x0, baseY); err != nil {
		log.Fatalf("pointer down: %v", err)
	}
	for x := x0; x < float64(width)*0.9; x += 4 {
		y := baseY + amp*math.Sin((x+float64(phase)*40)/50)
		if err := c.PointerMove(x, y); err != nil {
			log.Fatalf("pointer move: %v", err)
		}
	}
	if err := c.PointerUp(float64(width)*0.9, baseY); err != nil {
		log.Fatalf("pointer up: %v", err)
	}
}

// drawLoop draws a closed circle gesture for the fill demo.
func drawLoop(c *atrament.Canvas, cx, cy, r float64) {
	if err := c.PointerDown(cx+r, cy); err != nil {
		log.Fatalf("pointer down: %v", err)
	}
	for a := 0.0; a <= 2*math.Pi+0.3; a += 0.05 {
		if err := c.PointerMove(cx+r*math.Cos(a), cy+r*math.Sin(a)); err != nil {
			log.Fatalf("pointer move: %v", err)
		}
	}
	if err := c.PointerUp(cx+r, cy); err != nil {
		log.Fatalf("pointer up: %v", err)
	}
}
