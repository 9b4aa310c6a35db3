package funlib

import (
	"math"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// heatAnchor pins a palette color at a fraction of the speed range.
type heatAnchor struct {
	col colorful.Color
	pos float64
}

// The slow-to-fast ramp: cool blue through green and amber into red,
// ending in magenta for extreme speeds.
var heatAnchors = []heatAnchor{
	{mustHex("#2a6fdb"), 0.0},
	{mustHex("#38b6a5"), 0.2},
	{mustHex("#4ad65b"), 0.35},
	{mustHex("#e8d84b"), 0.5},
	{mustHex("#ee9a3b"), 0.65},
	{mustHex("#e8333e"), 0.8},
	{mustHex("#b3257f"), 1.0},
}

// DefaultMaxSpeed is the speed mapped to the hot end of the default
// palette, in position units per second. Faster motion clamps there.
const DefaultMaxSpeed = 500

// HeatPalette maps speeds onto a fixed color ramp, blending between
// anchors in HCL space for perceptually even transitions. Lookups are
// memoized per whole-unit speed; a palette is safe for concurrent use.
type HeatPalette struct {
	maxSpeed float64

	mu   sync.Mutex
	memo map[int64]RGBA
}

// NewHeatPalette returns a palette whose hot end sits at maxSpeed.
// Non-positive values fall back to DefaultMaxSpeed.
func NewHeatPalette(maxSpeed float64) *HeatPalette {
	if maxSpeed <= 0 {
		maxSpeed = DefaultMaxSpeed
	}
	return &HeatPalette{
		maxSpeed: maxSpeed,
		memo:     make(map[int64]RGBA),
	}
}

// Color maps a speed to its palette color. Speeds are quantized to
// whole units before lookup, so equal inputs always yield equal colors.
func (p *HeatPalette) Color(speed float64) RGBA {
	if math.IsNaN(speed) {
		speed = 0
	}
	key := int64(math.Round(speed))
	if key < 0 {
		key = 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.memo[key]; ok {
		return c
	}
	c := p.blend(float64(key) / p.maxSpeed)
	p.memo[key] = c
	return c
}

// blend interpolates the anchor ramp at fraction t in [0, 1].
func (p *HeatPalette) blend(t float64) RGBA {
	t = clamp01(t)
	for i := 0; i < len(heatAnchors)-1; i++ {
		a, b := heatAnchors[i], heatAnchors[i+1]
		if t < a.pos || t > b.pos {
			continue
		}
		local := (t - a.pos) / (b.pos - a.pos)
		c := a.col.BlendHcl(b.col, local).Clamped()
		return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
	}
	c := heatAnchors[len(heatAnchors)-1].col
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// DefaultSpeedColor is the package-default speed-to-color mapping,
// backed by a shared HeatPalette over [0, DefaultMaxSpeed].
var DefaultSpeedColor SpeedColorFunc = NewHeatPalette(DefaultMaxSpeed).Color

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("funlib: bad palette anchor " + s)
	}
	return c
}
