package funlib

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Chapter is a named time range within a script.
type Chapter struct {
	Name    string
	StartMs int64
	EndMs   int64
}

// Script is a loaded Funscript: normalized keyframes plus metadata.
type Script struct {
	Title    string
	Actions  []Keyframe
	Chapters []Chapter
}

type scriptJSON struct {
	Actions  []Keyframe    `json:"actions"`
	Metadata *metadataJSON `json:"metadata,omitempty"`
}

type metadataJSON struct {
	Title    string        `json:"title,omitempty"`
	Chapters []chapterJSON `json:"chapters,omitempty"`
}

type chapterJSON struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ParseScript decodes Funscript JSON and normalizes the keyframe list:
// actions are sorted by timestamp, duplicate timestamps collapse to the
// last occurrence, and positions are clamped into [0, 100].
func ParseScript(data []byte) (*Script, error) {
	var raw scriptJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("funlib: decode script: %w", err)
	}

	s := &Script{Actions: raw.Actions}
	if raw.Metadata != nil {
		s.Title = raw.Metadata.Title
		for _, c := range raw.Metadata.Chapters {
			start, err := parseTimecode(c.StartTime)
			if err != nil {
				return nil, fmt.Errorf("funlib: chapter %q: %w", c.Name, err)
			}
			end, err := parseTimecode(c.EndTime)
			if err != nil {
				return nil, fmt.Errorf("funlib: chapter %q: %w", c.Name, err)
			}
			s.Chapters = append(s.Chapters, Chapter{Name: c.Name, StartMs: start, EndMs: end})
		}
	}
	s.normalize()
	return s, nil
}

// LoadScript reads and parses a .funscript file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("funlib: read script: %w", err)
	}
	return ParseScript(data)
}

// normalize sorts actions by timestamp, keeps the last action among
// duplicates at the same timestamp, and clamps positions into [0, 100].
func (s *Script) normalize() {
	sort.SliceStable(s.Actions, func(i, j int) bool {
		return s.Actions[i].At < s.Actions[j].At
	})
	out := s.Actions[:0]
	for _, a := range s.Actions {
		if a.Pos < 0 {
			a.Pos = 0
		}
		if a.Pos > 100 {
			a.Pos = 100
		}
		if n := len(out); n > 0 && out[n-1].At == a.At {
			out[n-1] = a
			continue
		}
		out = append(out, a)
	}
	s.Actions = out
}

// Clone returns a deep copy of the script.
func (s *Script) Clone() *Script {
	c := &Script{Title: s.Title}
	c.Actions = append([]Keyframe(nil), s.Actions...)
	c.Chapters = append([]Chapter(nil), s.Chapters...)
	return c
}

// Duration returns the timestamp of the last keyframe in milliseconds,
// or 0 for an empty script.
func (s *Script) Duration() int64 {
	if len(s.Actions) == 0 {
		return 0
	}
	return s.Actions[len(s.Actions)-1].At
}

// AverageSpeed returns the duration-weighted mean motion speed in
// position units per second, or 0 for scripts with fewer than two
// keyframes.
func (s *Script) AverageSpeed() float64 {
	var weighted, total float64
	for _, seg := range BuildSegments(s.Actions) {
		d := float64(seg.Span())
		weighted += seg.Speed * d
		total += d
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// MaxSpeed returns the highest segment speed in position units per
// second, or 0 for scripts with fewer than two keyframes.
func (s *Script) MaxSpeed() float64 {
	var maxSpeed float64
	for _, seg := range BuildSegments(s.Actions) {
		if seg.Speed > maxSpeed {
			maxSpeed = seg.Speed
		}
	}
	return maxSpeed
}

// parseTimecode parses "HH:MM:SS" or "HH:MM:SS.mmm" into milliseconds.
func parseTimecode(tc string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(tc), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timecode %q", tc)
	}
	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timecode %q", tc)
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("invalid timecode %q", tc)
	}
	seconds, millis := parts[2], "0"
	if dot := strings.IndexByte(seconds, '.'); dot >= 0 {
		seconds, millis = seconds[:dot], seconds[dot+1:]
		// Pad/truncate the fraction to millisecond precision.
		for len(millis) < 3 {
			millis += "0"
		}
		millis = millis[:3]
	}
	secs, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil || secs > 59 {
		return 0, fmt.Errorf("invalid timecode %q", tc)
	}
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timecode %q", tc)
	}
	return ((hours*60+minutes)*60+secs)*1000 + ms, nil
}
