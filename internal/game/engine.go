package game

import (
	"math/rand"
	"sync"
	"time"
)

// Default activity timings and geometry. The ball interval is the one knob
// that directly defines game speed.
const (
	DefaultBallInterval = 25 * time.Millisecond
	DefaultAIInterval   = 25 * time.Millisecond
	DefaultPaddleWidth  = 5
	keyBuffer           = 64
)

// Options configures an Engine.
type Options struct {
	PaddleWidth  int           // paddle height in cells, must be odd
	BallInterval time.Duration // time between ball ticks
	AIInterval   time.Duration // time between AI ticks
	Seed         int64         // RNG seed for the serve direction; 0 = time-based
}

// DefaultOptions returns the standard game settings.
func DefaultOptions() Options {
	return Options{
		PaddleWidth:  DefaultPaddleWidth,
		BallInterval: DefaultBallInterval,
		AIInterval:   DefaultAIInterval,
	}
}

// Engine owns the shared state, the event channel and the lifecycle of the
// round-scoped activities. The render controller starts a round, consumes
// events until the round ends, then stops the round and joins the activities
// before the next reset.
type Engine struct {
	opts   Options
	state  *State
	events chan Event
	keys   chan Command
	rng    *rand.Rand

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates an engine for a field of the given size.
func New(width, height int, opts Options) *Engine {
	if opts.PaddleWidth <= 0 {
		opts.PaddleWidth = DefaultPaddleWidth
	}
	if opts.BallInterval <= 0 {
		opts.BallInterval = DefaultBallInterval
	}
	if opts.AIInterval <= 0 {
		opts.AIInterval = DefaultAIInterval
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	return &Engine{
		opts: opts,
		state: &State{
			Top:         0,
			Bottom:      height - 1,
			Width:       width,
			PaddleWidth: opts.PaddleWidth,
		},
		events: make(chan Event, eventBuffer),
		keys:   make(chan Command, keyBuffer),
		rng:    rand.New(rand.NewSource(opts.Seed)),
	}
}

// State returns the shared game state. Callers other than the activities must
// hold its lock while reading multiple fields.
func (e *Engine) State() *State {
	return e.state
}

// Events returns the ordered notification channel. There must be exactly one
// consumer.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// emit pushes an event without ever blocking the producing activity.
func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
		// Buffer full: the consumer is gone or hopelessly behind. Rendering
		// recovers on the next delivered event since events carry no payload.
	}
}

// StartRound resets the shared state for a fresh round and spawns the input,
// ball and AI activities. The previous round's activities must have been
// joined (StopRound) before calling this.
func (e *Engine) StartRound() {
	e.drain()

	s := e.state
	s.Lock()
	center := (s.TopReach() + s.BottomReach()) / 2
	s.Player = Paddle{Row: center, PrevRow: center, Col: s.Width - 1}
	s.AI = Paddle{Row: center, PrevRow: center, Col: 1}

	dirRow := 1
	if e.rng.Intn(2) == 0 {
		dirRow = -1
	}
	s.Ball = Ball{
		Row: center, Col: s.Player.Col - 1,
		PrevRow: center, PrevCol: s.Player.Col - 1,
		DirRow: dirRow, DirCol: -1,
	}

	s.Playing = true
	s.Unlock()

	e.stop = make(chan struct{})
	e.stopOnce = sync.Once{}

	e.wg.Add(3)
	go e.inputLoop(e.stop)
	go e.ballLoop(e.stop)
	go e.aiLoop(e.stop)
}

// StopRound signals the activities to terminate and blocks until all of them
// have exited. The ball activity may have already terminated itself on a
// miss; input and AI stop within one poll interval. Safe to call more than
// once per round.
func (e *Engine) StopRound() {
	if e.stop == nil {
		return
	}
	e.stopOnce.Do(func() {
		close(e.stop)
	})
	e.wg.Wait()
}

// Resize recomputes field bounds for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.state.Lock()
	e.state.resize(width, height)
	e.state.Unlock()
}

// Exiting reports whether a quit was requested.
func (e *Engine) Exiting() bool {
	e.state.Lock()
	defer e.state.Unlock()
	return e.state.Exiting
}

// drain discards stale key presses and events left over from a finished
// round, so they cannot leak into the next one.
func (e *Engine) drain() {
	for {
		select {
		case <-e.keys:
		case <-e.events:
		default:
			return
		}
	}
}
