package funlib

import "testing"

func TestBuildSegments(t *testing.T) {
	actions := []Keyframe{
		{At: 0, Pos: 0},
		{At: 1000, Pos: 100},
		{At: 1500, Pos: 50},
		{At: 1500, Pos: 60}, // zero span, skipped
		{At: 3500, Pos: 60},
	}
	got := BuildSegments(actions)

	if len(got) != 3 {
		t.Fatalf("BuildSegments() produced %d segments, want 3", len(got))
	}

	wantSpeeds := []float64{100, 100, 0}
	for i, want := range wantSpeeds {
		if !floatEq(got[i].Speed, want) {
			t.Errorf("segment %d speed = %v, want %v", i, got[i].Speed, want)
		}
	}
}

func TestBuildSegmentsTooFewActions(t *testing.T) {
	if got := BuildSegments(nil); got != nil {
		t.Errorf("BuildSegments(nil) = %v, want nil", got)
	}
	if got := BuildSegments([]Keyframe{{At: 0, Pos: 50}}); got != nil {
		t.Errorf("BuildSegments(single) = %v, want nil", got)
	}
}

func TestZigzagOversampling(t *testing.T) {
	in := []Segment{seg(0, 0, 1000, 100, 100)}
	got := Zigzag(in, 250)

	if len(got) != 4 {
		t.Fatalf("Zigzag(1000ms, step 250) produced %d segments, want 4", len(got))
	}
	for i, s := range got {
		if s.Speed != 100 {
			t.Errorf("sub-segment %d speed = %v, want 100 (inherited)", i, s.Speed)
		}
		if i > 0 && got[i-1].End != s.Start {
			t.Errorf("sub-segments %d and %d not contiguous", i-1, i)
		}
	}
	if got[0].Start.At != 0 || got[3].End.At != 1000 {
		t.Errorf("Zigzag lost time coverage: [%d, %d]", got[0].Start.At, got[3].End.At)
	}
}

func TestZigzagShortSegmentsUntouched(t *testing.T) {
	in := []Segment{seg(0, 0, 200, 50, 80)}
	got := Zigzag(in, 250)
	if len(got) != 1 || got[0] != in[0] {
		t.Fatalf("Zigzag(short) = %v, want input unchanged", got)
	}
}

func TestZigzagDefaultStep(t *testing.T) {
	in := []Segment{seg(0, 0, 1000, 100, 100)}
	if got := Zigzag(in, 0); len(got) != 4 {
		t.Fatalf("Zigzag(step 0) produced %d segments, want 4 at the default step", len(got))
	}
}
