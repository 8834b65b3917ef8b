// Package dodge implements the Endless Dodge simulation: a player paddle
// avoids falling obstacles spawned at an accelerating rate. The package is
// pure game logic with no external dependencies; the platform layer feeds it
// input intents and wall-clock deltas and reads back snapshots.
package dodge

// State is the game's finite-state machine state.
// Exactly one state is active at a time; transitions are the only mutator.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the display name used in the window title and HUD.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME OVER"
	default:
		return "UNKNOWN"
	}
}

// Event is an input to the state machine.
type Event int

const (
	// EventConfirm starts a run from the menu or restarts after game over.
	EventConfirm Event = iota
	// EventPause toggles between playing and paused.
	EventPause
	// EventCollision is raised by the tick when an obstacle hits the player.
	EventCollision
)

// transitions is the full (state, event) table. Pairs not present are
// illegal inputs and leave the state unchanged.
var transitions = map[State]map[Event]State{
	StateMenu: {
		EventConfirm: StatePlaying,
	},
	StatePlaying: {
		EventPause:     StatePaused,
		EventCollision: StateGameOver,
	},
	StatePaused: {
		EventPause: StatePlaying,
	},
	StateGameOver: {
		EventConfirm: StatePlaying,
	},
}

// Next returns the state reached from s on ev and whether a transition
// happened. Illegal (state, event) pairs are no-ops, not errors.
func (s State) Next(ev Event) (State, bool) {
	if to, ok := transitions[s][ev]; ok {
		return to, true
	}
	return s, false
}
