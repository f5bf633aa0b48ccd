package game

// Command is a key-driven request forwarded to the input activity. The render
// controller translates raw key presses into commands; the input activity is
// the only goroutine that applies them to the paddle.
type Command int

const (
	CommandMoveUp Command = iota
	CommandMoveDown
	CommandQuit
)

// Press hands a command to the input activity. Never blocks; if the buffer is
// full the press is dropped, which is indistinguishable from the key repeat
// outpacing the poll rate.
func (e *Engine) Press(cmd Command) {
	select {
	case e.keys <- cmd:
	default:
	}
}

// inputLoop is the input activity. Each iteration takes at most one pending
// command and applies it; an empty buffer is "no input this tick", not an
// error. Terminates when the round stops.
func (e *Engine) inputLoop(stop <-chan struct{}) {
	defer e.wg.Done()

	for {
		select {
		case <-stop:
			return
		case cmd := <-e.keys:
			e.applyCommand(cmd)
		}
	}
}

// applyCommand mutates the player paddle for a single command. Moves past the
// reachable range are rejected, not clamped: the paddle simply stays put. A
// move event is emitted even for a rejected move; the redraw is idempotent and
// the controller never has to guess whether a request was applied.
func (e *Engine) applyCommand(cmd Command) {
	s := e.state

	switch cmd {
	case CommandMoveUp:
		s.Lock()
		s.Player.PrevRow = s.Player.Row
		if s.Player.Row-1 >= s.TopReach() {
			s.Player.Row--
		}
		s.Unlock()
		e.emit(EventPlayerMoved)

	case CommandMoveDown:
		s.Lock()
		s.Player.PrevRow = s.Player.Row
		if s.Player.Row+1 <= s.BottomReach() {
			s.Player.Row++
		}
		s.Unlock()
		e.emit(EventPlayerMoved)

	case CommandQuit:
		s.Lock()
		s.Exiting = true
		s.Unlock()
		// Sentinel so the consumer unblocks right away instead of waiting
		// for the next ball or AI tick.
		e.emit(EventQuit)
	}
}
