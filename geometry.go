package funlib

import (
	"math"
	"sort"
)

// StrokeCommand is a drawable line between two pixel points, tagged
// with the speed and paint of the segment it came from.
type StrokeCommand struct {
	From  Point
	To    Point
	Speed float64
	Color RGBA
}

// StrokeCommands maps segments to pixel-space line commands for a lane
// of the given size. Time maps to x and inverted position to y, both
// inset by the stroke width so caps stay inside the lane. Coordinates
// are rounded to 2 decimal places for stable, compact markup.
//
// The returned commands are sorted ascending by speed. This is a paint
// order contract: fast segments draw last, so they are never occluded
// by slow ones where segments touch at shared time boundaries.
func StrokeCommands(segs []Segment, width, height, strokeWidth float64, durationMs int64, colorFor SpeedColorFunc) ([]StrokeCommand, error) {
	if durationMs <= 0 {
		return nil, ErrInvalidDuration
	}
	if len(segs) == 0 {
		return nil, nil
	}

	duration := float64(durationMs)
	cmds := make([]StrokeCommand, 0, len(segs))
	for _, seg := range segs {
		cmds = append(cmds, StrokeCommand{
			From:  mapKeyframe(seg.Start, width, height, strokeWidth, duration),
			To:    mapKeyframe(seg.End, width, height, strokeWidth, duration),
			Speed: seg.Speed,
			Color: colorFor(seg.Speed),
		})
	}

	sort.SliceStable(cmds, func(i, j int) bool {
		return cmds[i].Speed < cmds[j].Speed
	})
	return cmds, nil
}

// mapKeyframe projects a keyframe into lane pixel space. Position 0 is
// the bottom of the lane and 100 the top.
func mapKeyframe(k Keyframe, width, height, strokeWidth, duration float64) Point {
	return Point{
		X: round2(float64(k.At)/duration*(width-2*strokeWidth) + strokeWidth),
		Y: round2((100-k.Pos)*(height-2*strokeWidth)/100 + strokeWidth),
	}
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
