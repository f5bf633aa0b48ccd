// Package game implements the pong simulation: a shared, mutex-guarded state
// record mutated by concurrent activities (input, ball, AI), each of which
// notifies the render controller through a single ordered event channel.
package game

import (
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies one of the two players.
type Side int

const (
	SidePlayer Side = iota
	SideAI
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideAI {
		return "AI"
	}
	return "Player"
}

// Paddle is a vertical paddle at a fixed column.
// PrevRow tracks the last rendered position so the controller can erase the
// old glyphs without clearing the whole screen.
type Paddle struct {
	Row     int
	PrevRow int
	Col     int
}

// Ball is the ball position and direction. Directions are always -1 or +1;
// the ball moves exactly one cell per axis per tick.
type Ball struct {
	Row, Col         int
	PrevRow, PrevCol int
	DirRow, DirCol   int
}

// State is the game data shared between activities. All fields are guarded by
// the embedded mutex: activities lock around each read-modify-write, and the
// render controller locks around its whole read-erase-draw sequence so the
// screen never shows a torn frame.
type State struct {
	mu sync.Mutex

	Player Paddle
	AI     Paddle
	Ball   Ball

	// Field bounds in rows. Top is always 0; Bottom tracks terminal height-1.
	Top    int
	Bottom int
	// Width is the field width in columns.
	Width int

	// PaddleWidth is the paddle height in cells. Must be odd.
	PaddleWidth int

	Playing bool // round in progress
	Exiting bool // process shutdown requested
	Winner  Side // meaningful only after a round ended on a miss
}

// Lock acquires the state mutex.
func (s *State) Lock() { s.mu.Lock() }

// Unlock releases the state mutex.
func (s *State) Unlock() { s.mu.Unlock() }

// TopReach returns the topmost row a paddle center may occupy.
func (s *State) TopReach() int {
	return s.PaddleWidth / 2
}

// BottomReach returns the bottommost row a paddle center may occupy.
func (s *State) BottomReach() int {
	return s.Bottom - s.PaddleWidth/2
}

// resize recomputes field bounds for a new terminal size and pulls any
// now-invalid position back into range. Runs before the next collision check;
// caller holds the lock.
func (s *State) resize(width, height int) {
	s.Width = width
	s.Bottom = height - 1

	// The player paddle hugs the right edge, so its column moves with width.
	s.Player.Col = width - 1

	s.Player.Row = core.Clamp(s.Player.Row, s.TopReach(), s.BottomReach())
	s.Player.PrevRow = s.Player.Row
	s.AI.Row = core.Clamp(s.AI.Row, s.TopReach(), s.BottomReach())
	s.AI.PrevRow = s.AI.Row

	// The ball must land strictly between the paddle columns: a ball clamped
	// onto a paddle column would slide past it without a collision evaluation,
	// since the paddle test fires only when the ball arrives at the column.
	s.Ball.Row = core.Clamp(s.Ball.Row, s.Top, s.Bottom)
	s.Ball.Col = core.Clamp(s.Ball.Col, s.AI.Col+1, s.Player.Col-1)
	s.Ball.PrevRow, s.Ball.PrevCol = s.Ball.Row, s.Ball.Col
}
