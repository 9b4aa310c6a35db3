package funlib

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the SVG stroke-linecap keyword.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// Stroke defines the style used when tracing the motion path.
type Stroke struct {
	// Width is the line width in pixels. Default: 2.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapRound
	Cap LineCap
}

// DefaultStroke returns a Stroke with default settings: a 2-pixel line
// with round caps, so adjacent segments meet without gaps.
func DefaultStroke() Stroke {
	return Stroke{
		Width: 2.0,
		Cap:   LineCapRound,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}
