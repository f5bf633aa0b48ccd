package game

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ballLoop is the ball activity. It advances the ball on a fixed tick and is
// the one activity that can end a round on its own: on a miss it emits
// RoundOver and exits without waiting for the termination signal. It still
// honors the signal so a mid-round quit does not leave it running.
func (e *Engine) ballLoop(stop <-chan struct{}) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.opts.BallInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		if roundOver := e.ballTick(); roundOver {
			return
		}
	}
}

// ballTick advances the ball by one cell per axis, reflecting off walls and
// paddles. Returns true when a paddle missed and the round is over.
func (e *Engine) ballTick() bool {
	s := e.state
	s.Lock()

	b := &s.Ball
	b.PrevRow, b.PrevCol = b.Row, b.Col
	b.Row += b.DirRow
	b.Col += b.DirCol

	// Wall bounce: mirror across the boundary rather than clamp, so the
	// overshoot is reflected and the bounce geometry stays honest.
	if b.Row < s.Top || b.Row > s.Bottom {
		b.DirRow = -b.DirRow
		b.Row += 2 * b.DirRow
	}

	// Paddle tests fire exactly once, on the tick the ball reaches the
	// paddle's column. The catch test adjusts the ball row by its vertical
	// direction: a diagonal ball crossing the paddle band is caught with one
	// extra cell of tolerance.
	if b.Col == s.Player.Col {
		if core.Abs(s.Player.Row-b.Row+b.DirRow) <= s.PaddleWidth/2 {
			b.DirCol = -b.DirCol
			b.Col += 2 * b.DirCol
		} else {
			return e.endRound(SideAI)
		}
	}

	if b.Col == s.AI.Col {
		if core.Abs(s.AI.Row-b.Row+b.DirRow) <= s.PaddleWidth/2 {
			b.DirCol = -b.DirCol
			b.Col += 2 * b.DirCol
		} else {
			return e.endRound(SidePlayer)
		}
	}

	s.Unlock()
	e.emit(EventBallMoved)
	return false
}

// endRound records the winner and emits the single RoundOver event for this
// round. Called with the state lock held; releases it.
func (e *Engine) endRound(winner Side) bool {
	s := e.state
	s.Playing = false
	s.Winner = winner
	s.Unlock()
	e.emit(EventRoundOver)
	return true
}
