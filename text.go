package funlib

import "unicode/utf8"

// TextMeasurer reports the rendered width of a string in pixels.
// Real text measurement depends on the host fonts, so the renderer
// only estimates by default; hosts with a shaping engine can inject
// an exact implementation.
type TextMeasurer interface {
	Measure(text string, fontSize float64) float64
}

// estimateMeasurer approximates width from the rune count. The 0.6
// factor matches the average advance of common sans-serif faces.
type estimateMeasurer struct{}

func (estimateMeasurer) Measure(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * 0.6
}

// truncateToWidth shortens text until it fits maxWidth, appending an
// ellipsis when anything was cut.
func truncateToWidth(m TextMeasurer, text string, fontSize, maxWidth float64) string {
	if m.Measure(text, fontSize) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		cut := string(runes) + "…"
		if m.Measure(cut, fontSize) <= maxWidth {
			return cut
		}
	}
	return ""
}
