package waves

import (
	"errors"
	"image/color"
)

// ErrSurfaceUnavailable is returned by Mount when the host cannot provide a
// drawing surface. It is terminal for that mount attempt.
var ErrSurfaceUnavailable = errors.New("waves: drawing surface unavailable")

// Point is a sampled curve vertex in surface pixels.
type Point struct {
	X, Y float32
}

// Surface is the 2D drawing target owned by a single Renderer.
type Surface interface {
	Resize(width, height int)
	Clear()
	StrokePolyline(pts []Point, clr color.NRGBA, width float32)
	Release()
}

// SurfaceProvider hands out surfaces sized to the viewport.
type SurfaceProvider interface {
	Acquire(width, height int) (Surface, error)
}

// Viewport reports the current host size.
type Viewport interface {
	Size() (width, height int)
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() (int, int)

func (f ViewportFunc) Size() (int, int) { return f() }

// Modulator scales wave amplitudes each frame. Level returns a value in [0, 1].
type Modulator interface {
	Level() float64
}
