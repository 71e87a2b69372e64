package atrament

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestStrokeRecording(t *testing.T) {
	log := &eventLog{}
	c := NewCanvas(200, 200, WithRecording(true), WithNotifier(log.notify))

	if err := c.PointerDown(10, 10); err != nil {
		t.Fatalf("PointerDown: %v", err)
	}
	moves := []Point{{40, 20}, {70, 35}, {100, 60}}
	for _, p := range moves {
		if err := c.PointerMove(p.X, p.Y); err != nil {
			t.Fatalf("PointerMove: %v", err)
		}
	}
	if err := c.PointerUp(120, 80); err != nil {
		t.Fatalf("PointerUp: %v", err)
	}

	var rec *RecordedStroke
	for _, e := range log.list() {
		if ev, ok := e.(StrokeRecordedEvent); ok {
			rec = &ev.Stroke
		}
	}
	if rec == nil {
		t.Fatal("no StrokeRecordedEvent emitted")
	}

	// Anchor + three moves + release.
	if len(rec.Points) != 5 {
		t.Fatalf("recorded %d points, want 5", len(rec.Points))
	}
	if rec.Points[0].Point != Pt(10, 10) {
		t.Errorf("anchor = %v, want (10,10)", rec.Points[0].Point)
	}
	if rec.Points[4].Point != Pt(120, 80) {
		t.Errorf("release = %v, want (120,80)", rec.Points[4].Point)
	}
	// Raw input samples are recorded, not smoothed output.
	if rec.Points[1].Point != moves[0] {
		t.Errorf("sample 1 = %v, want raw %v", rec.Points[1].Point, moves[0])
	}
	for i := 1; i < len(rec.Points); i++ {
		if rec.Points[i].Elapsed < rec.Points[i-1].Elapsed {
			t.Errorf("elapsed went backwards at point %d", i)
		}
	}
	if rec.Mode != ModeDraw {
		t.Errorf("mode = %v, want draw", rec.Mode)
	}
	if rec.Weight != DefaultWeight {
		t.Errorf("weight = %v, want %v", rec.Weight, DefaultWeight)
	}
}

func TestRecordingDisabledEmitsNoStroke(t *testing.T) {
	log := &eventLog{}
	c := NewCanvas(100, 100, WithNotifier(log.notify))

	c.PointerDown(10, 10)
	c.PointerMove(40, 40)
	c.PointerUp(60, 60)

	for _, e := range log.list() {
		if _, ok := e.(StrokeRecordedEvent); ok {
			t.Fatal("StrokeRecordedEvent emitted with recording off")
		}
	}
}

func TestDrawStrokePaintsSurface(t *testing.T) {
	c := NewCanvas(100, 100)
	c.SetColorRGBA(RGB(1, 0, 0))
	if err := c.SetWeight(6); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}

	c.PointerDown(20, 50)
	c.PointerMove(80, 50)
	c.PointerUp(80, 50)

	got := c.Surface().Pix().GetPixel(22, 50)
	if got != RGB(1, 0, 0) {
		t.Errorf("pixel near anchor = %v, want stroke color", got)
	}
	if far := c.Surface().Pix().GetPixel(22, 10); far != Transparent {
		t.Errorf("pixel far from stroke = %v, want untouched", far)
	}
}

func TestEraseModeRemovesContent(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Surface().Pix().Clear(RGB(1, 0, 0))
	if err := c.SetWeight(6); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}
	if err := c.SetMode(ModeErase); err != nil {
		t.Fatalf("SetMode: %v", err)
	}

	c.PointerDown(20, 50)
	c.PointerMove(80, 50)
	c.PointerUp(80, 50)

	if got := c.Surface().Pix().GetPixel(22, 50); got.A != 0 {
		t.Errorf("erased pixel alpha = %v, want 0", got.A)
	}
	if far := c.Surface().Pix().GetPixel(22, 10); far != RGB(1, 0, 0) {
		t.Errorf("pixel far from eraser = %v, want untouched", far)
	}
}

func TestDrawAfterEraseCompositesNormally(t *testing.T) {
	c := NewCanvas(100, 100)
	c.SetColorRGBA(RGB(0, 0, 1))
	c.SetWeight(6)

	// Entering erase and leaving it again must restore source-over.
	c.SetMode(ModeErase)
	c.SetMode(ModeDraw)

	c.PointerDown(20, 50)
	c.PointerMove(80, 50)
	c.PointerUp(80, 50)

	if got := c.Surface().Pix().GetPixel(22, 50); got != RGB(0, 0, 1) {
		t.Errorf("pixel = %v, want stroke color after mode round-trip", got)
	}
}

func TestDisabledModeIgnoresInput(t *testing.T) {
	log := &eventLog{}
	c := NewCanvas(50, 50, WithMode(ModeDisabled), WithNotifier(log.notify))
	c.SetColorRGBA(RGB(1, 0, 0))

	before := append([]uint8(nil), c.Surface().Pix().Data()...)

	c.PointerDown(10, 10)
	c.PointerMove(30, 30)
	c.PointerUp(40, 40)
	c.Wait()

	if !bytes.Equal(before, c.Surface().Pix().Data()) {
		t.Error("surface mutated in disabled mode")
	}
	if n := len(log.list()); n != 0 {
		t.Errorf("%d events emitted in disabled mode, want 0", n)
	}
}

func TestPickModeSamplesColor(t *testing.T) {
	log := &eventLog{}
	c := NewCanvas(50, 50, WithMode(ModePick), WithNotifier(log.notify))
	c.Surface().Pix().SetPixel(12, 8, RGB(0, 1, 0))

	c.PointerUp(12, 8)

	events := log.list()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	pick, ok := events[0].(PickEvent)
	if !ok {
		t.Fatalf("event = %T, want PickEvent", events[0])
	}
	if pick.X != 12 || pick.Y != 8 {
		t.Errorf("pick position = (%v,%v), want (12,8)", pick.X, pick.Y)
	}
	if pick.Color != RGB(0, 1, 0) {
		t.Errorf("picked color = %v, want green", pick.Color)
	}
}

func TestFillModePointerDown(t *testing.T) {
	c := NewCanvas(10, 10, WithMode(ModeFill), WithSettleDelay(0))
	c.Surface().Pix().Clear(White)
	c.SetColorRGBA(RGB(1, 0, 0))

	c.PointerDown(5, 5)
	c.Wait()

	if got := c.Surface().Pix().GetPixel(0, 0); got != RGB(1, 0, 0) {
		t.Errorf("pixel = %v, want filled red", got)
	}
}

func TestSetModeRejectsUnknown(t *testing.T) {
	c := NewCanvas(10, 10)

	if err := c.SetMode(Mode(99)); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("SetMode(99) = %v, want ErrInvalidMode", err)
	}
	if c.Mode() != ModeDraw {
		t.Errorf("mode changed to %v after rejected transition", c.Mode())
	}
}

func TestSetWeightValidation(t *testing.T) {
	c := NewCanvas(10, 10)

	for _, w := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if err := c.SetWeight(w); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("SetWeight(%v) = %v, want ErrInvalidWeight", w, err)
		}
	}
	if err := c.SetWeight(4); err != nil {
		t.Errorf("SetWeight(4) = %v, want nil", err)
	}
	if c.Weight() != 4 {
		t.Errorf("weight = %v, want 4", c.Weight())
	}
}

func TestSetSmoothingValidation(t *testing.T) {
	c := NewCanvas(10, 10)

	for _, s := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		if err := c.SetSmoothing(s); !errors.Is(err, ErrInvalidSmoothing) {
			t.Errorf("SetSmoothing(%v) = %v, want ErrInvalidSmoothing", s, err)
		}
	}
	if err := c.SetSmoothing(0.5); err != nil {
		t.Errorf("SetSmoothing(0.5) = %v, want nil", err)
	}
	if c.Smoothing() != 0.5 {
		t.Errorf("smoothing = %v, want 0.5", c.Smoothing())
	}
}

func TestSetColorValidation(t *testing.T) {
	c := NewCanvas(10, 10)

	if err := c.SetColor("not-a-color"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("SetColor(invalid) = %v, want ErrInvalidColor", err)
	}
	if err := c.SetColor("#ff8000"); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	got := c.Color()
	if got.R != 1 || got.B != 0 {
		t.Errorf("color = %v, want parsed #ff8000", got)
	}
}

func TestPointerInputRejectsNonFinite(t *testing.T) {
	c := NewCanvas(10, 10)

	if err := c.PointerDown(math.NaN(), 5); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("PointerDown(NaN) = %v, want ErrInvalidCoordinate", err)
	}
	if err := c.PointerMove(5, math.Inf(-1)); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("PointerMove(-Inf) = %v, want ErrInvalidCoordinate", err)
	}
	if err := c.Fill(math.Inf(1), 0); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("Fill(+Inf) = %v, want ErrInvalidCoordinate", err)
	}
}

func TestWithModeIgnoresInvalid(t *testing.T) {
	c := NewCanvas(10, 10, WithMode(Mode(42)))
	if c.Mode() != ModeDraw {
		t.Errorf("mode = %v, want default draw", c.Mode())
	}
}

func TestWithSurfaceInjection(t *testing.T) {
	s := NewSoftwareSurface(30, 20)
	c := NewCanvas(999, 999, WithSurface(s))

	if c.Surface() != Surface(s) {
		t.Error("injected surface not used")
	}
	if c.Surface().Width() != 30 || c.Surface().Height() != 20 {
		t.Errorf("surface dimensions = %dx%d, want 30x20",
			c.Surface().Width(), c.Surface().Height())
	}
}
