package waves

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/iburimskiy/purpletab/internal/config"
	"github.com/iburimskiy/purpletab/internal/theme"
)

// Config is the slice of user preferences the renderer consumes.
type Config struct {
	LineColor      string
	IsVisible      bool
	CursorReaction bool
}

// Options carries the host collaborators for Mount.
type Options struct {
	Viewport  Viewport
	Surfaces  SurfaceProvider
	Scheduler FrameScheduler
	// Modulator is optional.
	Modulator Modulator
	// Specs overrides DefaultSpecs when non-empty.
	Specs []Spec
}

// Geometry is the pixel layout of one wave for the applied viewport.
type Geometry struct {
	Amplitude float64
	Baseline  float64
}

// Renderer paints the animated wave background onto a surface it owns.
//
// All methods must be called from the goroutine that drives the scheduler.
// Configuration, resize and pointer changes are consumed at the top of the
// next frame so nothing mutates mid-paint.
type Renderer struct {
	sched     FrameScheduler
	surface   Surface
	modulator Modulator

	state   LoopState
	handle  FrameHandle
	inFrame bool
	mounted bool
	frameFn func()

	cfg        Config
	pending    Config
	hasPending bool
	stroke     color.NRGBA

	width, height  int
	pendingW       int
	pendingH       int
	hasPendingSize bool
	pointerX       float64
	pointerY       float64
	hasPointer     bool

	specs  []Spec
	phases []float64
	points []Point
	frames uint64
}

// Mount acquires a surface sized to the viewport and starts the loop when
// cfg.IsVisible is set. If the host cannot provide a surface the error wraps
// ErrSurfaceUnavailable and nothing stays registered.
func Mount(cfg Config, opts Options) (*Renderer, error) {
	w, h := opts.Viewport.Size()
	surface, err := opts.Surfaces.Acquire(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	if surface == nil {
		return nil, ErrSurfaceUnavailable
	}

	specs := opts.Specs
	if len(specs) == 0 {
		specs = DefaultSpecs()
	}
	r := &Renderer{
		sched:     opts.Scheduler,
		surface:   surface,
		modulator: opts.Modulator,
		mounted:   true,
		width:     w,
		height:    h,
		specs:     append([]Spec(nil), specs...),
		phases:    make([]float64, len(specs)),
		stroke:    color.NRGBA{A: 0xff},
	}
	r.frameFn = r.frame
	r.resetPhases()
	r.apply(cfg)
	log.Printf("[Waves] mounted %dx%d, %d waves, visible=%v", w, h, len(specs), cfg.IsVisible)
	return r, nil
}

// UpdateConfiguration queues cfg for the next frame. Hiding the background
// cancels the loop right away and clears the surface; while idle the change
// applies immediately.
func (r *Renderer) UpdateConfiguration(cfg Config) {
	if !r.mounted {
		return
	}
	if !cfg.IsVisible && r.cfg.IsVisible || r.state == Idle {
		r.hasPending = false
		r.apply(cfg)
		return
	}
	r.pending = cfg
	r.hasPending = true
}

// OnResize queues a surface resize for the next frame, or applies it now when
// the loop is idle.
func (r *Renderer) OnResize(width, height int) {
	if !r.mounted || width <= 0 || height <= 0 {
		return
	}
	if r.state == Idle {
		r.hasPendingSize = false
		r.resize(width, height)
		return
	}
	r.pendingW, r.pendingH = width, height
	r.hasPendingSize = true
}

// OnPointerMove records the latest pointer position. It is consulted only
// while cursor reaction is enabled.
func (r *Renderer) OnPointerMove(x, y float64) {
	r.pointerX, r.pointerY = x, y
	r.hasPointer = true
}

// OnPointerLeave forgets the pointer position.
func (r *Renderer) OnPointerLeave() {
	r.hasPointer = false
}

// Unmount stops the loop and releases the surface. Calling it again is a
// no-op.
func (r *Renderer) Unmount() {
	if !r.mounted {
		return
	}
	r.stop()
	r.mounted = false
	r.surface.Release()
	log.Printf("[Waves] unmounted after %d frames", r.frames)
}

// State reports the loop state.
func (r *Renderer) State() LoopState { return r.state }

// Mounted reports whether the renderer still owns its surface.
func (r *Renderer) Mounted() bool { return r.mounted }

// Config returns the configuration currently in effect.
func (r *Renderer) Config() Config { return r.cfg }

// StrokeColor returns the colour used for the next painted frame, before
// per-wave opacity.
func (r *Renderer) StrokeColor() color.NRGBA { return r.stroke }

// Frames reports how many frames were painted.
func (r *Renderer) Frames() uint64 { return r.frames }

// Phases returns a copy of the current per-wave phases.
func (r *Renderer) Phases() []float64 {
	return append([]float64(nil), r.phases...)
}

// Surface returns the surface the renderer paints into.
func (r *Renderer) Surface() Surface { return r.surface }

// Size returns the applied surface size.
func (r *Renderer) Size() (int, int) { return r.width, r.height }

// Geometry reports each wave's pixel amplitude and baseline for the applied
// viewport.
func (r *Renderer) Geometry() []Geometry {
	out := make([]Geometry, len(r.specs))
	h := float64(r.height)
	for i, s := range r.specs {
		out[i] = Geometry{Amplitude: s.Amplitude * h, Baseline: s.Baseline * h}
	}
	return out
}

func (r *Renderer) apply(cfg Config) {
	wasVisible := r.cfg.IsVisible
	if c, err := theme.ParseHex(cfg.LineColor); err == nil {
		r.stroke = c
	} else if cfg.LineColor != r.cfg.LineColor {
		// Same as a canvas strokeStyle: bad values are ignored.
		log.Printf("[Waves] ignoring line color %q", cfg.LineColor)
	}
	r.cfg = cfg

	switch {
	case cfg.IsVisible && r.state == Idle:
		if !wasVisible {
			r.resetPhases()
		}
		r.start()
	case !cfg.IsVisible && r.state != Idle:
		r.stop()
		r.surface.Clear()
	case !cfg.IsVisible:
		r.surface.Clear()
	}
}

func (r *Renderer) start() {
	r.state = Running
	r.handle = r.sched.RequestFrame(r.frameFn)
}

func (r *Renderer) stop() {
	if r.inFrame {
		// The running callback checks this before re-registering.
		if r.state == Running {
			r.state = Cancelling
		}
		return
	}
	if r.handle != 0 {
		r.sched.CancelFrame(r.handle)
		r.handle = 0
	}
	r.state = Idle
	r.flushPendingSize()
}

func (r *Renderer) resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.surface.Resize(width, height)
}

// flushPendingSize applies a resize queued while the loop was running. It
// must only run once the loop is idle.
func (r *Renderer) flushPendingSize() {
	if r.hasPendingSize && r.mounted {
		r.hasPendingSize = false
		r.resize(r.pendingW, r.pendingH)
	}
}

func (r *Renderer) resetPhases() {
	for i, s := range r.specs {
		r.phases[i] = wrapPhase(s.Phase)
	}
}

func (r *Renderer) frame() {
	r.handle = 0
	if r.state != Running || !r.mounted {
		return
	}
	r.inFrame = true

	if r.hasPendingSize {
		r.hasPendingSize = false
		r.resize(r.pendingW, r.pendingH)
	}
	if r.hasPending {
		r.hasPending = false
		r.apply(r.pending)
	}

	if r.state == Running {
		r.paint()
		r.advance()
	}

	r.inFrame = false
	if r.state == Cancelling {
		r.state = Idle
		r.flushPendingSize()
		if !r.cfg.IsVisible && r.mounted {
			r.surface.Clear()
		}
		return
	}
	r.handle = r.sched.RequestFrame(r.frameFn)
}

func (r *Renderer) paint() {
	r.surface.Clear()
	r.frames++

	w, h := float64(r.width), float64(r.height)
	swell := 1.0
	if r.modulator != nil {
		swell += config.SwellGain * clamp01(r.modulator.Level())
	}
	react := r.cfg.CursorReaction && r.hasPointer

	for i, s := range r.specs {
		amp := s.Amplitude * h * swell
		base := s.Baseline * h
		phase := r.phases[i]

		r.points = r.points[:0]
		for x := 0.0; ; x += config.SampleStride {
			if x > w {
				x = w
			}
			y := base + amp*math.Sin(x*s.Frequency+phase)
			if react {
				y += r.ripple(x, y, h)
			}
			r.points = append(r.points, Point{X: float32(x), Y: float32(y)})
			if x >= w {
				break
			}
		}

		c := r.stroke
		c.A = uint8(clamp01(s.Opacity) * 255)
		r.surface.StrokePolyline(r.points, c, s.Width)
	}
}

// ripple pushes the curve away from the pointer, decaying with horizontal
// distance from it.
func (r *Renderer) ripple(x, y, h float64) float64 {
	dx := x - r.pointerX
	falloff := math.Exp(-(dx * dx) / (2 * config.RippleRadius * config.RippleRadius))
	if falloff < 1e-4 {
		return 0
	}
	dir := 1.0
	if y < r.pointerY {
		dir = -1
	}
	return dir * falloff * config.RippleStrength * h
}

func (r *Renderer) advance() {
	for i, s := range r.specs {
		r.phases[i] = wrapPhase(r.phases[i] + s.Speed)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
