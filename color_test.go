package funlib

import (
	"math"
	"testing"
)

func colorsEqual(c1, c2 RGBA, eps float64) bool {
	return math.Abs(c1.R-c2.R) < eps &&
		math.Abs(c1.G-c2.G) < eps &&
		math.Abs(c1.B-c2.B) < eps &&
		math.Abs(c1.A-c2.A) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"long form red", "#ff0000", RGB(1, 0, 0)},
		{"no hash", "00ff00", RGB(0, 1, 0)},
		{"short form", "#fff", RGB(1, 1, 1)},
		{"with alpha", "#ff000080", RGBA{R: 1, G: 0, B: 0, A: 128.0 / 255}},
		{"invalid falls back to black", "#zz", RGB(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); !colorsEqual(got, tt.want, 0.001) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexString(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{RGB(1, 0, 0), "#ff0000"},
		{Hex("#1e90ff"), "#1e90ff"},
		{Black, "#000000"},
	}

	for _, tt := range tests {
		if got := tt.c.HexString(); got != tt.want {
			t.Errorf("HexString(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestNamed(t *testing.T) {
	c, ok := Named("DodgerBlue")
	if !ok {
		t.Fatal("Named(DodgerBlue) not recognized")
	}
	if !colorsEqual(c, Hex("#1e90ff"), 0.01) {
		t.Errorf("Named(DodgerBlue) = %+v, want #1e90ff", c)
	}

	if _, ok := Named("notacolor"); ok {
		t.Error("Named(notacolor) recognized, want failure")
	}
}

func TestLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := RGB(0.5, 0.5, 0.5)
	if !colorsEqual(got, want, 0.001) {
		t.Errorf("Lerp midpoint = %+v, want %+v", got, want)
	}
}
