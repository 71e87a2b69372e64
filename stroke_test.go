package atrament

import (
	"math"
	"testing"
)

func TestSmoothingFactorCeiling(t *testing.T) {
	r := newStrokeRenderer(NewSoftwareSurface(10, 10))

	dists := []float64{0, 10, 60, 100, 1000, 1e6, 1e12}
	for _, d := range dists {
		if f := r.smoothingFactor(d); f > maxSmoothingFactor {
			t.Errorf("smoothingFactor(%v) = %v, exceeds ceiling %v", d, f, maxSmoothingFactor)
		}
	}
}

func TestSmoothingFactorGrowsWithSpeed(t *testing.T) {
	r := newStrokeRenderer(NewSoftwareSurface(10, 10))

	slow := r.smoothingFactor(5)
	fast := r.smoothingFactor(120)
	if fast <= slow {
		t.Errorf("fast factor %v not greater than slow factor %v", fast, slow)
	}
}

func TestThicknessConvergence(t *testing.T) {
	r := newStrokeRenderer(NewSoftwareSurface(400, 400))

	prev := Pt(200, 200)
	last := r.style.CurrentThickness

	// A jittery spiral of samples: speed varies wildly step to step.
	for i := 0; i < 500; i++ {
		x := 200 + 180*math.Sin(float64(i)*1.7)
		y := 200 + 180*math.Cos(float64(i)*0.9)
		prev = r.ProcessSample(x, y, prev)

		cur := r.style.CurrentThickness
		if step := math.Abs(cur - last); step > thicknessIncrement+1e-9 {
			t.Fatalf("sample %d: thickness jumped by %v (> increment %v)", i, step, thicknessIncrement)
		}
		if cur > r.style.MaxWeight+1e-9 {
			t.Fatalf("sample %d: thickness %v exceeds max weight %v", i, cur, r.style.MaxWeight)
		}
		last = cur
	}
}

func TestThicknessConstantWhenAdaptiveDisabled(t *testing.T) {
	r := newStrokeRenderer(NewSoftwareSurface(400, 400))
	r.style.Adaptive = false

	prev := Pt(10, 10)
	for i := 0; i < 50; i++ {
		prev = r.ProcessSample(float64(10+i*7), float64(10+i*3), prev)
		if r.style.CurrentThickness != r.style.BaseWeight {
			t.Fatalf("thickness %v, want constant base weight %v",
				r.style.CurrentThickness, r.style.BaseWeight)
		}
	}
}

func TestProcessSampleLagsTowardRawPoint(t *testing.T) {
	r := newStrokeRenderer(NewSoftwareSurface(400, 400))

	prev := Pt(100, 100)
	proc := r.ProcessSample(200, 100, prev)

	// The smoothed point lies strictly between the previous point and
	// the raw sample.
	if proc.X <= prev.X || proc.X >= 200 {
		t.Errorf("smoothed X = %v, want between %v and 200", proc.X, prev.X)
	}
	if proc.Y != 100 {
		t.Errorf("smoothed Y = %v, want 100", proc.Y)
	}
}

func TestSetWeightResetsThicknessState(t *testing.T) {
	r := newStrokeRenderer(NewSoftwareSurface(400, 400))

	prev := Pt(0, 0)
	for i := 0; i < 20; i++ {
		prev = r.ProcessSample(float64(i*30), float64(i*20), prev)
	}

	r.setWeight(10)
	s := r.style
	if s.BaseWeight != 10 || s.MaxWeight != 10+WeightSpread {
		t.Errorf("weights = (%v, %v), want (10, %v)", s.BaseWeight, s.MaxWeight, 10+WeightSpread)
	}
	if s.CurrentThickness != 10 || s.TargetThickness != 10 {
		t.Errorf("thickness state = (%v, %v), want reset to 10", s.CurrentThickness, s.TargetThickness)
	}
}

func TestPreviousPointChaining(t *testing.T) {
	c := NewCanvas(400, 400, WithSettleDelay(0))

	c.BeginStroke(10, 10)
	proc := c.Sample(80, 60)

	if got := c.pointer.Previous(); got != proc {
		t.Errorf("stored previous = %v, want returned smoothed point %v", got, proc)
	}
	if proc == Pt(80, 60) {
		t.Error("previous point stored the raw sample, not the smoothed point")
	}
}
