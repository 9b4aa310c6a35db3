package funlib

// SpeedColorFunc maps a motion speed (position units per second) to a
// color. Implementations must be deterministic for equal inputs; the
// renderer assumes the mapping is pure and cache-friendly.
type SpeedColorFunc func(speed float64) RGBA

// PaintedStop is a gradient stop with its derived paint, directly
// serializable as gradient-stop markup in any vector format.
type PaintedStop struct {
	Offset  float64
	Color   RGBA
	Opacity float64
}

// Opacity derives stop opacity from speed: fully opaque at speed 100
// and above, proportionally translucent below. Slow stretches fade
// toward the page background instead of drawing a flat low-saturation
// color.
func Opacity(speed float64) float64 {
	if speed >= 100 {
		return 1
	}
	return speed / 100
}

// PaintStops derives a paint for each gradient stop using the injected
// speed-to-color mapping.
func PaintStops(stops []GradientStop, colorFor SpeedColorFunc) []PaintedStop {
	if len(stops) == 0 {
		return nil
	}
	out := make([]PaintedStop, len(stops))
	for i, s := range stops {
		out[i] = PaintedStop{
			Offset:  s.Offset,
			Color:   colorFor(s.Speed),
			Opacity: Opacity(s.Speed),
		}
	}
	return out
}
