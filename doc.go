// Package funlib renders Funscript motion scripts into vector previews.
//
// # Overview
//
// A Funscript is an ordered list of timestamp/position keyframes driving
// an actuator. funlib turns such a script into a visual preview: a stroke
// path tracing the motion plus a horizontal background gradient encoding
// instantaneous speed over time. The output is value-stable SVG markup;
// rasterization is left to the host.
//
// # Quick Start
//
//	import "github.com/OppositeOdd/funlib"
//
//	script, err := funlib.LoadScript("scene.funscript")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := funlib.NewRenderer(funlib.WithSize(800, 90))
//	svg, err := r.Render(script)
//
// # Architecture
//
// The library is organized into:
//   - Data model: Script, Keyframe, Chapter, Segment
//   - Synthesis core: Synthesis (gradient stops), StrokeCommands (geometry)
//   - Paint: RGBA, SpeedColorFunc, HeatPalette
//   - Rendering boundary: Renderer (SVG assembly)
//
// # Coordinate System
//
// Preview coordinates follow SVG conventions: origin at the top-left,
// x increases right with time, y increases down. Position 100 maps to
// the top of a lane and position 0 to the bottom.
//
// # Determinism
//
// Every synthesis call is a pure function of its inputs. Equal inputs
// produce value-identical gradient stops and stroke commands, so calls
// may run concurrently without coordination.
package funlib

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
