package funlib

// RenderOption configures a Renderer during creation.
// Use functional options to customize rendering behavior.
//
// Example:
//
//	// Default 800x90 lanes
//	r := funlib.NewRenderer()
//
//	// Custom size and palette (dependency injection)
//	r := funlib.NewRenderer(
//	    funlib.WithSize(1200, 120),
//	    funlib.WithSpeedColor(myPalette.Color),
//	)
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Renderer creation.
type renderOptions struct {
	width         float64
	laneHeight    float64
	stroke        Stroke
	colorFor      SpeedColorFunc
	background    RGBA
	hasBackground bool
	showTitle     bool
	showChapters  bool
	fontSize      float64
	measurer      TextMeasurer
	synthesis     Synthesis
	zigzagStepMs  int64
}

// defaultRenderOptions returns the default renderer options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		width:        800,
		laneHeight:   90,
		stroke:       DefaultStroke(),
		colorFor:     DefaultSpeedColor,
		showTitle:    true,
		showChapters: true,
		fontSize:     13,
		measurer:     estimateMeasurer{},
		synthesis:    DefaultSynthesis(),
		zigzagStepMs: DefaultZigzagStepMs,
	}
}

// WithSize sets the lane width and height in pixels. Values below 1
// are ignored.
func WithSize(width, laneHeight float64) RenderOption {
	return func(o *renderOptions) {
		if width >= 1 {
			o.width = width
		}
		if laneHeight >= 1 {
			o.laneHeight = laneHeight
		}
	}
}

// WithStroke sets the stroke style for the motion path.
func WithStroke(s Stroke) RenderOption {
	return func(o *renderOptions) {
		o.stroke = s
	}
}

// WithStrokeWidth sets only the stroke width, keeping other stroke
// settings at their defaults.
func WithStrokeWidth(w float64) RenderOption {
	return func(o *renderOptions) {
		o.stroke = o.stroke.WithWidth(w)
	}
}

// WithSpeedColor sets a custom speed-to-color mapping.
// The function must be deterministic for equal inputs.
func WithSpeedColor(fn SpeedColorFunc) RenderOption {
	return func(o *renderOptions) {
		if fn != nil {
			o.colorFor = fn
		}
	}
}

// WithBackground sets an opaque page color painted behind the speed
// gradient. Without it, low-speed stretches fade to whatever the host
// document shows through.
func WithBackground(c RGBA) RenderOption {
	return func(o *renderOptions) {
		o.background = c
		o.hasBackground = true
	}
}

// WithoutTitle disables the per-lane title text.
func WithoutTitle() RenderOption {
	return func(o *renderOptions) {
		o.showTitle = false
	}
}

// WithoutChapters disables the chapter bar overlay.
func WithoutChapters() RenderOption {
	return func(o *renderOptions) {
		o.showChapters = false
	}
}

// WithFontSize sets the title font size in pixels.
func WithFontSize(size float64) RenderOption {
	return func(o *renderOptions) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithTextMeasurer sets a custom text measurer for title truncation.
// Use this to inject exact host-side text measurement.
func WithTextMeasurer(m TextMeasurer) RenderOption {
	return func(o *renderOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithSynthesis sets custom gradient synthesis tunables.
func WithSynthesis(sy Synthesis) RenderOption {
	return func(o *renderOptions) {
		o.synthesis = sy
	}
}

// WithZigzagStep sets the oversampling interval, in milliseconds, for
// the segment sequence fed to gradient synthesis.
func WithZigzagStep(stepMs int64) RenderOption {
	return func(o *renderOptions) {
		if stepMs > 0 {
			o.zigzagStepMs = stepMs
		}
	}
}
