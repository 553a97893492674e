package waves

// LoopState is the lifecycle of a renderer's frame loop.
type LoopState int

const (
	// Idle means no frame callback is registered.
	Idle LoopState = iota
	// Running means exactly one frame callback is registered.
	Running
	// Cancelling means the loop was stopped from inside a frame callback;
	// the callback finishes its paint and does not re-register.
	Cancelling
)

func (s LoopState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Cancelling:
		return "cancelling"
	default:
		return "unknown"
	}
}

// FrameHandle identifies a registered frame callback. Zero means none.
type FrameHandle uint64

// FrameScheduler is the host's display refresh mechanism.
type FrameScheduler interface {
	// RequestFrame registers cb to run once on the next frame.
	RequestFrame(cb func()) FrameHandle
	// CancelFrame drops a registered callback. Cancelling an unknown or
	// already fired handle is a no-op.
	CancelFrame(h FrameHandle)
}

type frameEntry struct {
	id FrameHandle
	cb func()
}

// Ticker is a FrameScheduler driven by an external tick, one per display
// refresh. The game calls Tick from ebiten's Update; tests call it by hand.
//
// Callbacks requested during a Tick run on the following Tick. A cancelled
// callback never runs, even when it was cancelled from inside the same Tick.
// Ticker is not safe for concurrent use.
type Ticker struct {
	next    FrameHandle
	pending []frameEntry
	running []frameEntry
	frames  uint64
}

// NewTicker returns an empty ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

func (t *Ticker) RequestFrame(cb func()) FrameHandle {
	t.next++
	t.pending = append(t.pending, frameEntry{id: t.next, cb: cb})
	return t.next
}

func (t *Ticker) CancelFrame(h FrameHandle) {
	if h == 0 {
		return
	}
	for i := range t.pending {
		if t.pending[i].id == h {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
	// Still queued in the batch currently being run.
	for i := range t.running {
		if t.running[i].id == h {
			t.running[i].cb = nil
			return
		}
	}
}

// Tick runs every callback registered before this call.
func (t *Ticker) Tick() {
	t.frames++
	// Swap buffers so re-registrations land in the next batch without
	// allocating a fresh slice each frame.
	t.running, t.pending = t.pending, t.running[:0]
	for i := 0; i < len(t.running); i++ {
		if cb := t.running[i].cb; cb != nil {
			t.running[i].cb = nil
			cb()
		}
	}
	t.running = t.running[:0]
}

// Pending reports how many callbacks wait for the next Tick.
func (t *Ticker) Pending() int {
	return len(t.pending)
}

// Frames reports how many ticks have run.
func (t *Ticker) Frames() uint64 {
	return t.frames
}
