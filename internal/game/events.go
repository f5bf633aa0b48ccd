package game

// Event is a discrete notification pushed by an activity after it mutates the
// shared state. Events carry no payload: the consumer always re-reads current
// state under the lock, so a stale payload can never desynchronize rendering.
type Event int

const (
	// EventPlayerMoved is emitted by the input activity after a move request,
	// including requests rejected at the field edge.
	EventPlayerMoved Event = iota

	// EventAIMoved is emitted by the AI activity every tick, whether or not
	// the paddle actually moved.
	EventAIMoved

	// EventBallMoved is emitted by the ball activity after every tick that
	// did not end the round.
	EventBallMoved

	// EventRoundOver is emitted exactly once per round, by the ball activity,
	// when a paddle misses.
	EventRoundOver

	// EventQuit is a sentinel emitted on a quit request so the consumer
	// unblocks immediately instead of waiting for the next natural event.
	EventQuit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPlayerMoved:
		return "PlayerMoved"
	case EventAIMoved:
		return "AIMoved"
	case EventBallMoved:
		return "BallMoved"
	case EventRoundOver:
		return "RoundOver"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// eventBuffer is the event channel capacity. Producers send without blocking;
// the single consumer drains far faster than the three producers fill, so the
// buffer never comes close to this bound in practice.
const eventBuffer = 1024
