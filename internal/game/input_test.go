package game

import (
	"testing"
)

// drainEvents empties the event channel and returns what was queued.
func drainEvents(e *Engine) []Event {
	var out []Event
	for {
		select {
		case ev := <-e.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestMoveUpAtTopBoundIsRejected(t *testing.T) {
	// Field height 21, width 5: reachable range [2, 18]. A paddle at the top
	// bound stays put, but the move event is still queued.
	e := newTestEngine(80, 21)
	s := e.State()
	s.Player.Row = 2
	s.Player.PrevRow = 2

	e.applyCommand(CommandMoveUp)

	if s.Player.Row != 2 {
		t.Errorf("player row = %d, expected 2 (move past bound must be a no-op)", s.Player.Row)
	}
	evs := drainEvents(e)
	if len(evs) != 1 || evs[0] != EventPlayerMoved {
		t.Errorf("queued events = %v, expected exactly one PlayerMoved", evs)
	}
}

func TestMoveDownAtBottomBoundIsRejected(t *testing.T) {
	e := newTestEngine(80, 21)
	s := e.State()
	s.Player.Row = 18
	s.Player.PrevRow = 18

	e.applyCommand(CommandMoveDown)

	if s.Player.Row != 18 {
		t.Errorf("player row = %d, expected 18", s.Player.Row)
	}
	evs := drainEvents(e)
	if len(evs) != 1 || evs[0] != EventPlayerMoved {
		t.Errorf("queued events = %v, expected exactly one PlayerMoved", evs)
	}
}

func TestMoveSavesPreviousRow(t *testing.T) {
	e := newTestEngine(80, 21)
	s := e.State()
	s.Player.Row = 10
	s.Player.PrevRow = 10

	e.applyCommand(CommandMoveUp)

	if s.Player.Row != 9 {
		t.Errorf("player row = %d, expected 9", s.Player.Row)
	}
	if s.Player.PrevRow != 10 {
		t.Errorf("player prev row = %d, expected 10", s.Player.PrevRow)
	}
}

func TestQuitSetsExitFlagAndEmitsSentinel(t *testing.T) {
	e := newTestEngine(80, 21)

	e.applyCommand(CommandQuit)

	if !e.Exiting() {
		t.Error("Exiting() should be true after a quit command")
	}
	evs := drainEvents(e)
	if len(evs) != 1 || evs[0] != EventQuit {
		t.Errorf("queued events = %v, expected exactly one Quit sentinel", evs)
	}
}

func TestPressNeverBlocks(t *testing.T) {
	e := newTestEngine(80, 21)

	// No input activity is draining; fill well past the buffer.
	for i := 0; i < keyBuffer*2; i++ {
		e.Press(CommandMoveUp)
	}
	// Reaching here is the assertion.
}
