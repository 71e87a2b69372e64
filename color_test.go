package atrament

import (
	"errors"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGBA
		wantErr bool
	}{
		{"six digit", "#ff0000", RGB(1, 0, 0), false},
		{"no hash", "00ff00", RGB(0, 1, 0), false},
		{"short form", "#fff", White, false},
		{"uppercase", "#FF00FF", RGB(1, 0, 1), false},
		{"with alpha", "#0000ff80", RGBA{B: 1, A: 128.0 / 255}, false},
		{"surrounding space", "  #000000  ", Black, false},
		{"empty", "", RGBA{}, true},
		{"bad length", "#ff00", RGBA{}, true},
		{"bad digits", "#gg0000", RGBA{}, true},
		{"bad alpha digits", "#ff0000zz", RGBA{}, true},
		{"named color unsupported", "red", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseColor(%q) err = %v, want ErrInvalidColor", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.input, err)
			}
			if !colorsClose(got, tt.want) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#ffffff", "#ff8040", "#12345678"}
	for _, in := range inputs {
		c, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if got := c.Hex(); got != in {
			t.Errorf("round trip %q -> %q", in, got)
		}
	}
}

func TestHexDropsOpaqueAlpha(t *testing.T) {
	if got := RGB(1, 0, 0).Hex(); got != "#ff0000" {
		t.Errorf("opaque Hex() = %q, want #ff0000", got)
	}
	if got := (RGBA{R: 1, A: 0.5}).Hex(); got != "#ff00007f" {
		t.Errorf("translucent Hex() = %q, want #ff00007f", got)
	}
}

func TestColorLerp(t *testing.T) {
	a := Black
	b := White

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want start", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want end", got)
	}
	mid := a.Lerp(b, 0.5)
	if mid.R != 0.5 || mid.A != 1 {
		t.Errorf("Lerp(0.5) = %v, want mid grey", mid)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	got := FromColor(orig.Color())

	if !colorsClose(got, orig) {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}

func colorsClose(a, b RGBA) bool {
	const eps = 1.0 / 255
	return math.Abs(a.R-b.R) <= eps &&
		math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.A-b.A) <= eps
}
