package game

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// aiLoop is the AI activity: constant-speed pursuit of the ball's row, one
// cell per tick. Stepping by sign rather than by the full distance is what
// makes the AI beatable. Terminates when the round stops.
func (e *Engine) aiLoop(stop <-chan struct{}) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.opts.AIInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		e.aiTick()
	}
}

// aiTick steps the AI paddle one cell toward the ball. A step that would
// leave the reachable range is rejected outright. Emits AIMoved every tick
// so the controller re-checks, moved or not.
func (e *Engine) aiTick() {
	s := e.state
	s.Lock()

	next := s.AI.Row + core.Sign(s.Ball.Row-s.AI.Row)
	s.AI.PrevRow = s.AI.Row
	if next >= s.TopReach() && next <= s.BottomReach() {
		s.AI.Row = next
	}

	s.Unlock()
	e.emit(EventAIMoved)
}
