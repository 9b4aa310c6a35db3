package funlib

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Renderer assembles SVG previews from scripts. A Renderer is immutable
// after creation and safe for concurrent use.
type Renderer struct {
	opts renderOptions
}

// NewRenderer creates a renderer with the given options applied over
// the defaults.
func NewRenderer(opts ...RenderOption) *Renderer {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render returns the SVG preview of one or more scripts as a string.
// Each script occupies one horizontal lane; lanes share a common time
// axis spanning the longest script.
func (r *Renderer) Render(scripts ...*Script) (string, error) {
	var b strings.Builder
	if err := r.RenderTo(&b, scripts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo writes the SVG preview of one or more scripts to w.
func (r *Renderer) RenderTo(w io.Writer, scripts ...*Script) error {
	o := r.opts
	totalHeight := o.laneHeight * float64(len(scripts))

	// Lanes share one time axis so stacked channels stay aligned.
	var durationMs int64
	for _, s := range scripts {
		if d := s.Duration(); d > durationMs {
			durationMs = d
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		ftoa(o.width), ftoa(totalHeight), ftoa(o.width), ftoa(totalHeight))
	b.WriteByte('\n')

	lanes := make([][]PaintedStop, len(scripts))
	b.WriteString("<defs>\n")
	for i, s := range scripts {
		raw := BuildSegments(s.Actions)
		zz := Zigzag(raw, o.zigzagStepMs)
		var stops []GradientStop
		if durationMs > 0 {
			var err error
			stops, err = o.synthesis.Stops(zz, durationMs)
			if err != nil {
				return fmt.Errorf("funlib: lane %d gradient: %w", i, err)
			}
		}
		Logger().Debug("synthesized lane gradient",
			"lane", i, "segments", len(raw), "zigzag", len(zz), "stops", len(stops))
		lanes[i] = PaintStops(stops, o.colorFor)
		if len(lanes[i]) == 0 {
			continue
		}
		fmt.Fprintf(&b, `<linearGradient id="speed-%d" x1="0" y1="0" x2="1" y2="0">`, i)
		b.WriteByte('\n')
		for _, st := range lanes[i] {
			fmt.Fprintf(&b, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`,
				ftoa(round4(st.Offset)), st.Color.HexString(), ftoa(round4(st.Opacity)))
			b.WriteByte('\n')
		}
		b.WriteString("</linearGradient>\n")
	}
	b.WriteString("</defs>\n")

	for i, s := range scripts {
		laneY := o.laneHeight * float64(i)
		fmt.Fprintf(&b, `<g transform="translate(0,%s)">`, ftoa(laneY))
		b.WriteByte('\n')

		if o.hasBackground {
			fmt.Fprintf(&b, `<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`,
				ftoa(o.width), ftoa(o.laneHeight), o.background.HexString())
			b.WriteByte('\n')
		}
		if len(lanes[i]) > 0 {
			fmt.Fprintf(&b, `<rect x="0" y="0" width="%s" height="%s" fill="url(#speed-%d)"/>`,
				ftoa(o.width), ftoa(o.laneHeight), i)
			b.WriteByte('\n')
		}

		if durationMs > 0 {
			cmds, err := StrokeCommands(BuildSegments(s.Actions),
				o.width, o.laneHeight, o.stroke.Width, durationMs, o.colorFor)
			if err != nil {
				return fmt.Errorf("funlib: lane %d path: %w", i, err)
			}
			for _, c := range cmds {
				fmt.Fprintf(&b, `<path d="M %s %s L %s %s" stroke="%s" stroke-width="%s" stroke-linecap="%s" fill="none"/>`,
					ftoa(c.From.X), ftoa(c.From.Y), ftoa(c.To.X), ftoa(c.To.Y),
					c.Color.HexString(), ftoa(o.stroke.Width), o.stroke.Cap)
				b.WriteByte('\n')
			}
		}

		if o.showChapters && durationMs > 0 {
			r.writeChapterBar(&b, s.Chapters, durationMs)
		}
		if o.showTitle && s.Title != "" {
			title := truncateToWidth(o.measurer, s.Title, o.fontSize, o.width-12)
			fmt.Fprintf(&b, `<text x="6" y="%s" font-family="sans-serif" font-size="%s" fill="#ffffff">%s</text>`,
				ftoa(o.fontSize+4), ftoa(o.fontSize), xmlEscape(title))
			b.WriteByte('\n')
		}

		b.WriteString("</g>\n")
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// chapterBarHeight is the height of the chapter overlay strip in pixels.
const chapterBarHeight = 6

// writeChapterBar draws translucent markers for each chapter along the
// bottom edge of a lane. Chapter names travel as <title> elements so
// hosts get hover tooltips without extra layout.
func (r *Renderer) writeChapterBar(b *strings.Builder, chapters []Chapter, durationMs int64) {
	o := r.opts
	for _, c := range chapters {
		if c.EndMs <= c.StartMs {
			continue
		}
		x0 := round2(float64(c.StartMs) / float64(durationMs) * o.width)
		x1 := round2(float64(c.EndMs) / float64(durationMs) * o.width)
		if x1 > o.width {
			x1 = o.width
		}
		if x1 <= x0 {
			continue
		}
		// A 1px gap separates adjacent chapters, unless the chapter is
		// too narrow to afford one.
		barW := x1 - x0 - 1
		if barW < 1 {
			barW = x1 - x0
		}
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%d" fill="#ffffff" fill-opacity="0.35">`,
			ftoa(x0), ftoa(o.laneHeight-chapterBarHeight), ftoa(round2(barW)), chapterBarHeight)
		fmt.Fprintf(b, `<title>%s</title></rect>`, xmlEscape(c.Name))
		b.WriteByte('\n')
	}
}

// ftoa formats a float compactly, without trailing zeros.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round4 rounds to 4 decimal places, enough to keep gradient offsets
// stable across runs without bloating the markup.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
