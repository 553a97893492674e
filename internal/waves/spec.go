package waves

import "math"

// Spec describes one sinusoidal curve of the background.
//
// Amplitude and Baseline are fractions of the viewport height so the curves
// keep their proportions when the surface is resized.
type Spec struct {
	Amplitude float64 // peak deviation, fraction of height
	Baseline  float64 // vertical centre, fraction of height
	Frequency float64 // radians per pixel
	Phase     float64 // initial phase, radians
	Speed     float64 // phase advance per frame, radians
	Opacity   float64 // stroke alpha, 0..1
	Width     float32 // stroke width, pixels
}

// DefaultSpecs returns the stock set of waves. Every wave has its own
// frequency, phase and speed so the pattern never lines up.
func DefaultSpecs() []Spec {
	return []Spec{
		{Amplitude: 0.080, Baseline: 0.50, Frequency: 0.0060, Phase: 0, Speed: 0.020, Opacity: 0.90, Width: 2},
		{Amplitude: 0.060, Baseline: 0.55, Frequency: 0.0085, Phase: 1.3, Speed: 0.031, Opacity: 0.65, Width: 1.5},
		{Amplitude: 0.100, Baseline: 0.45, Frequency: 0.0042, Phase: 2.7, Speed: 0.014, Opacity: 0.45, Width: 1.5},
		{Amplitude: 0.045, Baseline: 0.60, Frequency: 0.0110, Phase: 4.1, Speed: 0.043, Opacity: 0.30, Width: 1},
	}
}

// wrapPhase keeps p in [0, 2π).
func wrapPhase(p float64) float64 {
	p = math.Mod(p, 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	return p
}
