package funlib

import "math"

// Keyframe is one motion sample: a timestamp in milliseconds and a
// normalized actuator position in [0, 100].
type Keyframe struct {
	At  int64   `json:"at"`
	Pos float64 `json:"pos"`
}

// lerpKeyframe interpolates between two keyframes at fraction t.
// The timestamp is rounded to whole milliseconds.
func lerpKeyframe(a, b Keyframe, t float64) Keyframe {
	return Keyframe{
		At:  a.At + int64(math.Round(float64(b.At-a.At)*t)),
		Pos: a.Pos + (b.Pos-a.Pos)*t,
	}
}
