package funlib

import "math"

// Segment is one unit of motion between two keyframes, tagged with a
// single representative speed in position units per second.
// Segments are value types; synthesis never mutates its input, it only
// reads segments and combines them into new values.
type Segment struct {
	Start Keyframe
	End   Keyframe
	Speed float64
}

// Span returns the segment duration in milliseconds.
func (s Segment) Span() int64 {
	return s.End.At - s.Start.At
}

// BuildSegments converts consecutive keyframe pairs into segments.
// Pairs with non-positive time spans carry no motion and are skipped.
func BuildSegments(actions []Keyframe) []Segment {
	if len(actions) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(actions)-1)
	for i := 1; i < len(actions); i++ {
		a, b := actions[i-1], actions[i]
		span := b.At - a.At
		if span <= 0 {
			continue
		}
		segs = append(segs, Segment{
			Start: a,
			End:   b,
			Speed: math.Abs(b.Pos-a.Pos) / float64(span) * 1000,
		})
	}
	return segs
}

// DefaultZigzagStepMs is the sampling interval used by Zigzag when the
// caller passes a non-positive step.
const DefaultZigzagStepMs = 250

// Zigzag oversamples segments at stepMs intervals, producing the denser
// sequence fed to gradient synthesis. Each sub-segment inherits its
// parent's speed. Stroke geometry keeps the raw segments; only the
// gradient consumes the oversampled envelope.
func Zigzag(segs []Segment, stepMs int64) []Segment {
	if stepMs <= 0 {
		stepMs = DefaultZigzagStepMs
	}
	out := make([]Segment, 0, len(segs))
	for _, seg := range segs {
		span := seg.Span()
		if span <= stepMs {
			out = append(out, seg)
			continue
		}
		n := (span + stepMs - 1) / stepMs
		for i := int64(0); i < n; i++ {
			out = append(out, Segment{
				Start: lerpKeyframe(seg.Start, seg.End, float64(i)/float64(n)),
				End:   lerpKeyframe(seg.Start, seg.End, float64(i+1)/float64(n)),
				Speed: seg.Speed,
			})
		}
	}
	return out
}
