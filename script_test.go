package funlib

import (
	"strings"
	"testing"
)

const sampleScript = `{
	"actions": [
		{"at": 1000, "pos": 100},
		{"at": 0, "pos": 0},
		{"at": 1000, "pos": 90},
		{"at": 3000, "pos": 120},
		{"at": 2000, "pos": -5}
	],
	"metadata": {
		"title": "Warmup",
		"chapters": [
			{"name": "Intro", "startTime": "00:00:00.000", "endTime": "00:00:01.500"},
			{"name": "Main", "startTime": "00:00:01.500", "endTime": "00:00:03"}
		]
	}
}`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(sampleScript))
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}

	if s.Title != "Warmup" {
		t.Errorf("Title = %q, want Warmup", s.Title)
	}

	// Normalized: sorted, duplicate timestamp collapsed to the last
	// occurrence, positions clamped into [0, 100].
	want := []Keyframe{
		{At: 0, Pos: 0},
		{At: 1000, Pos: 90},
		{At: 2000, Pos: 0},
		{At: 3000, Pos: 100},
	}
	if len(s.Actions) != len(want) {
		t.Fatalf("Actions = %+v, want %+v", s.Actions, want)
	}
	for i := range want {
		if s.Actions[i] != want[i] {
			t.Errorf("action %d = %+v, want %+v", i, s.Actions[i], want[i])
		}
	}

	if len(s.Chapters) != 2 {
		t.Fatalf("Chapters = %+v, want 2 entries", s.Chapters)
	}
	if c := s.Chapters[0]; c.StartMs != 0 || c.EndMs != 1500 {
		t.Errorf("chapter 0 = %+v, want [0, 1500]", c)
	}
	if c := s.Chapters[1]; c.StartMs != 1500 || c.EndMs != 3000 {
		t.Errorf("chapter 1 = %+v, want [1500, 3000]", c)
	}
}

func TestParseScriptBadJSON(t *testing.T) {
	if _, err := ParseScript([]byte(`{"actions": [}`)); err == nil {
		t.Fatal("ParseScript(malformed) error = nil, want decode error")
	}
}

func TestParseScriptBadChapter(t *testing.T) {
	in := `{"actions": [], "metadata": {"chapters": [{"name": "x", "startTime": "oops", "endTime": "00:00:01"}]}}`
	if _, err := ParseScript([]byte(in)); err == nil || !strings.Contains(err.Error(), "x") {
		t.Fatalf("ParseScript(bad chapter) error = %v, want chapter error naming it", err)
	}
}

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"00:00:00.000", 0, false},
		{"00:00:01", 1000, false},
		{"00:01:30.500", 90500, false},
		{"01:00:00", 3600000, false},
		{"00:00:05.7", 5700, false},
		{"1:02:03", 3723000, false},
		{"00:75:00", 0, true},
		{"00:00:99", 0, true},
		{"garbage", 0, true},
		{"00:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTimecode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTimecode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseTimecode(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestScriptDuration(t *testing.T) {
	empty := &Script{}
	if d := empty.Duration(); d != 0 {
		t.Errorf("empty Duration() = %d, want 0", d)
	}

	s := &Script{Actions: []Keyframe{{At: 0, Pos: 0}, {At: 4200, Pos: 50}}}
	if d := s.Duration(); d != 4200 {
		t.Errorf("Duration() = %d, want 4200", d)
	}
}

func TestScriptSpeedStats(t *testing.T) {
	s := &Script{Actions: []Keyframe{
		{At: 0, Pos: 0},
		{At: 1000, Pos: 100}, // speed 100 over 1s
		{At: 3000, Pos: 100}, // speed 0 over 2s
	}}

	if got := s.AverageSpeed(); !floatEq(got, 100.0/3) {
		t.Errorf("AverageSpeed() = %v, want %v", got, 100.0/3)
	}
	if got := s.MaxSpeed(); !floatEq(got, 100) {
		t.Errorf("MaxSpeed() = %v, want 100", got)
	}

	empty := &Script{}
	if got := empty.AverageSpeed(); got != 0 {
		t.Errorf("empty AverageSpeed() = %v, want 0", got)
	}
}

func TestScriptClone(t *testing.T) {
	s, err := ParseScript([]byte(sampleScript))
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	c := s.Clone()
	c.Actions[0].Pos = 42
	c.Chapters[0].Name = "changed"

	if s.Actions[0].Pos == 42 {
		t.Error("Clone() shares the actions slice with the original")
	}
	if s.Chapters[0].Name == "changed" {
		t.Error("Clone() shares the chapters slice with the original")
	}
}
