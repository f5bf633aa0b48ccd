package game

import (
	"testing"
	"time"
)

func TestWallBounceMirrorsOvershoot(t *testing.T) {
	e := newTestEngine(80, 21)
	s := e.State()
	s.Playing = true
	s.Ball = Ball{Row: 0, Col: 40, DirRow: -1, DirCol: 1}
	s.Player.Col = 79
	s.AI.Col = 1

	if over := e.ballTick(); over {
		t.Fatal("ballTick ended the round on a wall bounce")
	}
	if s.Ball.Row != 1 {
		t.Errorf("ball row = %d after top bounce, expected 1", s.Ball.Row)
	}
	if s.Ball.DirRow != 1 {
		t.Errorf("ball DirRow = %d after top bounce, expected +1", s.Ball.DirRow)
	}

	// Same law at the bottom wall.
	s.Ball = Ball{Row: 20, Col: 40, DirRow: 1, DirCol: 1}
	if over := e.ballTick(); over {
		t.Fatal("ballTick ended the round on a wall bounce")
	}
	if s.Ball.Row != 19 {
		t.Errorf("ball row = %d after bottom bounce, expected 19", s.Ball.Row)
	}
	if s.Ball.DirRow != -1 {
		t.Errorf("ball DirRow = %d after bottom bounce, expected -1", s.Ball.DirRow)
	}

	evs := drainEvents(e)
	if len(evs) != 2 || evs[0] != EventBallMoved || evs[1] != EventBallMoved {
		t.Errorf("queued events = %v, expected two BallMoved", evs)
	}
}

func TestPlayerPaddleReflectsBall(t *testing.T) {
	// Diagonal ball one tick from the player column. The tick moves it to
	// (11,49); the catch test passes, the column direction flips and the
	// mirror step puts the ball back at column 51.
	e := newTestEngine(80, 21)
	s := e.State()
	s.Playing = true
	s.Player = Paddle{Row: 10, PrevRow: 10, Col: 49}
	s.AI = Paddle{Row: 10, PrevRow: 10, Col: 1}
	s.Ball = Ball{Row: 10, Col: 50, DirRow: 1, DirCol: -1}

	if over := e.ballTick(); over {
		t.Fatal("ballTick ended the round on a caught ball")
	}
	if s.Ball.Row != 11 {
		t.Errorf("ball row = %d, expected 11", s.Ball.Row)
	}
	if s.Ball.Col != 51 {
		t.Errorf("ball column = %d, expected 51 (mirrored off the paddle)", s.Ball.Col)
	}
	if s.Ball.DirCol != 1 {
		t.Errorf("ball DirCol = %d, expected +1 after reflection", s.Ball.DirCol)
	}

	evs := drainEvents(e)
	if len(evs) != 1 || evs[0] != EventBallMoved {
		t.Errorf("queued events = %v, expected one BallMoved", evs)
	}
}

func TestAIPaddleReflectsBall(t *testing.T) {
	e := newTestEngine(80, 21)
	s := e.State()
	s.Playing = true
	s.Player = Paddle{Row: 10, PrevRow: 10, Col: 79}
	s.AI = Paddle{Row: 5, PrevRow: 5, Col: 1}
	s.Ball = Ball{Row: 5, Col: 2, DirRow: 0, DirCol: -1}

	if over := e.ballTick(); over {
		t.Fatal("ballTick ended the round on a caught ball")
	}
	if s.Ball.Col != 3 {
		t.Errorf("ball column = %d, expected 3 (mirrored off the AI paddle)", s.Ball.Col)
	}
	if s.Ball.DirCol != 1 {
		t.Errorf("ball DirCol = %d, expected +1 after reflection", s.Ball.DirCol)
	}
}

func TestCatchJustInsideAndJustOutsideEdge(t *testing.T) {
	// Half-width 2: the post-move test value must be <= 2 to catch.
	e := newTestEngine(80, 21)
	s := e.State()

	s.Playing = true
	s.Player = Paddle{Row: 10, PrevRow: 10, Col: 49}
	s.AI = Paddle{Row: 10, PrevRow: 10, Col: 1}
	// Ball ends at row 13; with DirRow +1 the test value is |10-13+1| = 2.
	s.Ball = Ball{Row: 12, Col: 50, DirRow: 1, DirCol: -1}
	if over := e.ballTick(); over {
		t.Error("edge-of-paddle ball should have been caught")
	}

	drainEvents(e)

	// Ball ends at row 14; test value |10-14+1| = 3 misses.
	s.Playing = true
	s.Ball = Ball{Row: 13, Col: 50, DirRow: 1, DirCol: -1}
	if over := e.ballTick(); !over {
		t.Error("ball one past the paddle edge should have been a miss")
	}
	if s.Winner != SideAI {
		t.Errorf("winner = %v, expected AI after a player miss", s.Winner)
	}
}

func TestMissEndsRound(t *testing.T) {
	e := newTestEngine(80, 21)
	s := e.State()
	s.Playing = true
	s.Player = Paddle{Row: 2, PrevRow: 2, Col: 49}
	s.AI = Paddle{Row: 10, PrevRow: 10, Col: 1}
	s.Ball = Ball{Row: 15, Col: 50, DirRow: 0, DirCol: -1}

	over := e.ballTick()
	if !over {
		t.Fatal("ballTick should report the round over on a miss")
	}
	if s.Playing {
		t.Error("Playing should be false after a miss")
	}
	if s.Winner != SideAI {
		t.Errorf("winner = %v, expected SideAI when the player misses", s.Winner)
	}

	evs := drainEvents(e)
	if len(evs) != 1 || evs[0] != EventRoundOver {
		t.Errorf("queued events = %v, expected exactly one RoundOver and no BallMoved", evs)
	}
}

func TestAIMissAwardsPlayer(t *testing.T) {
	e := newTestEngine(80, 21)
	s := e.State()
	s.Playing = true
	s.Player = Paddle{Row: 10, PrevRow: 10, Col: 79}
	s.AI = Paddle{Row: 2, PrevRow: 2, Col: 1}
	s.Ball = Ball{Row: 15, Col: 2, DirRow: 0, DirCol: -1}

	if over := e.ballTick(); !over {
		t.Fatal("ballTick should report the round over on an AI miss")
	}
	if s.Winner != SidePlayer {
		t.Errorf("winner = %v, expected SidePlayer", s.Winner)
	}
}

func TestBallLoopSelfTerminatesOnMiss(t *testing.T) {
	e := newTestEngine(80, 21)
	e.opts.BallInterval = time.Millisecond
	s := e.State()
	s.Playing = true
	s.Player = Paddle{Row: 2, PrevRow: 2, Col: 49}
	s.AI = Paddle{Row: 10, PrevRow: 10, Col: 1}
	s.Ball = Ball{Row: 15, Col: 50, DirRow: 0, DirCol: -1}

	e.stop = make(chan struct{})
	e.wg.Add(1)
	go e.ballLoop(e.stop)

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ball activity did not terminate itself after the miss")
	}

	// RoundOver must be the last event; no BallMoved may follow it.
	evs := drainEvents(e)
	if len(evs) == 0 || evs[len(evs)-1] != EventRoundOver {
		t.Fatalf("queued events = %v, expected RoundOver last", evs)
	}
	for _, ev := range evs[:len(evs)-1] {
		if ev == EventRoundOver {
			t.Errorf("more than one RoundOver in %v", evs)
		}
	}
}
