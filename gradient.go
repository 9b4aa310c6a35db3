package funlib

import "errors"

// ErrInvalidDuration is returned when a synthesis call receives a
// non-positive total duration. Offsets are time divided by duration,
// so a zero duration has no defined output.
var ErrInvalidDuration = errors.New("funlib: duration must be positive")

// GradientStop is one control point of the speed gradient: a fraction
// along the time axis in [0, 1] and the speed it represents.
type GradientStop struct {
	Offset float64
	Speed  float64
}

// Synthesis holds the tunables of gradient-stop synthesis. The defaults
// are load-bearing for output compatibility; change them only when a
// different visual smoothness tradeoff is wanted.
type Synthesis struct {
	// LongSpanMs is the span above which a segment is subdivided.
	LongSpanMs int64

	// TargetSpanMs is the nominal sub-interval length after subdivision.
	TargetSpanMs int64

	// SpanBiasMs is subtracted from the span before computing the
	// subdivision count, keeping sub-intervals near TargetSpanMs
	// instead of leaving a tiny remainder interval.
	SpanBiasMs int64

	// MergeSpanMs fuses adjacent segments whose combined span is below
	// this value.
	MergeSpanMs int64

	// FadePadMs is the window for zero-speed fade stops synthesized
	// next to the first and last segments when there is room.
	FadePadMs int64
}

// DefaultSynthesis returns the standard synthesis tunables.
func DefaultSynthesis() Synthesis {
	return Synthesis{
		LongSpanMs:   2000,
		TargetSpanMs: 1000,
		SpanBiasMs:   500,
		MergeSpanMs:  1000,
		FadePadMs:    100,
	}
}

// timedStop is a gradient stop still expressed in absolute milliseconds,
// before normalization against the total duration.
type timedStop struct {
	atMs  float64
	speed float64
}

// expand subdivides over-long segments into evenly spaced sub-segments
// so that later boundary-fade synthesis has stops to work against.
// Segments with non-positive span carry no visual information and are
// dropped.
func (sy Synthesis) expand(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, seg := range segs {
		span := seg.Span()
		if span <= 0 {
			continue
		}
		if span <= sy.LongSpanMs {
			out = append(out, seg)
			continue
		}
		n := (span - sy.SpanBiasMs) / sy.TargetSpanMs
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

// merge fuses adjacent segment pairs whose combined span falls below
// MergeSpanMs, averaging their speeds weighted by duration. A freshly
// merged segment is re-examined against its new right neighbor, so
// merges cascade. Each merge removes a segment, so the pass terminates.
func (sy Synthesis) merge(segs []Segment) []Segment {
	out := append([]Segment(nil), segs...)
	i := 0
	for i < len(out)-1 {
		a, b := out[i], out[i+1]
		if b.End.At-a.Start.At < sy.MergeSpanMs {
			da := float64(a.Span())
			db := float64(b.Span())
			out[i] = Segment{
				Start: a.Start,
				End:   b.End,
				Speed: (a.Speed*da + b.Speed*db) / (da + db),
			}
			out = append(out[:i+1], out[i+2:]...)
			continue
		}
		i++
	}
	return out
}

// dropFlatRuns removes stops whose speed equals that of both original
// neighbors: a flat run is represented by its endpoints only. The
// filter is idempotent.
func dropFlatRuns(stops []timedStop) []timedStop {
	out := make([]timedStop, 0, len(stops))
	for i, s := range stops {
		if i == 0 || i == len(stops)-1 ||
			s.speed != stops[i-1].speed || s.speed != stops[i+1].speed {
			out = append(out, s)
		}
	}
	return out
}

// Stops synthesizes the gradient-stop sequence for a segment list over
// a total duration. Segments are expanded, merged, reduced to midpoint
// stops with redundant interior stops removed, and padded with boundary
// and fade stops. Offsets are clamped into [0, 1] even when fade
// padding overshoots the nominal duration.
//
// An empty segment list yields no stops and no error. A non-positive
// duration returns ErrInvalidDuration.
func (sy Synthesis) Stops(segs []Segment, durationMs int64) ([]GradientStop, error) {
	if durationMs <= 0 {
		return nil, ErrInvalidDuration
	}

	segs = sy.merge(sy.expand(segs))
	if len(segs) == 0 {
		return nil, nil
	}

	// Interior redundancy filter: keep a segment's stop only if it is
	// first, last, or its speed differs from an immediate neighbor.
	kept := make([]Segment, 0, len(segs))
	for i, s := range segs {
		if i == 0 || i == len(segs)-1 ||
			s.Speed != segs[i-1].Speed || s.Speed != segs[i+1].Speed {
			kept = append(kept, s)
		}
	}

	// One stop per surviving segment, at its temporal midpoint.
	stops := make([]timedStop, 0, len(kept)+4)
	for _, s := range kept {
		stops = append(stops, timedStop{
			atMs:  float64(s.Start.At+s.End.At) / 2,
			speed: s.Speed,
		})
	}

	// Boundary synthesis: anchor the gradient at the first and last
	// segment edges, fading from/to silence when the segments leave
	// more than FadePadMs of room at either end of the duration.
	first, last := segs[0], segs[len(segs)-1]
	stops = append([]timedStop{{atMs: float64(first.Start.At), speed: first.Speed}}, stops...)
	if first.Start.At > sy.FadePadMs {
		stops = append([]timedStop{{atMs: float64(first.Start.At - sy.FadePadMs), speed: 0}}, stops...)
	}
	stops = append(stops, timedStop{atMs: float64(last.End.At), speed: last.Speed})
	if last.End.At < durationMs-sy.FadePadMs {
		stops = append(stops, timedStop{atMs: float64(last.End.At + sy.FadePadMs), speed: 0})
	}

	// Boundary insertion can create new equal-neighbor runs.
	stops = dropFlatRuns(stops)

	out := make([]GradientStop, len(stops))
	for i, s := range stops {
		out[i] = GradientStop{
			Offset: clamp01(s.atMs / float64(durationMs)),
			Speed:  s.speed,
		}
	}
	return out, nil
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
