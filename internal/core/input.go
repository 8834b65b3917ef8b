package core

// Intents is the input state for a single simulation tick, abstracted from
// physical key presses. Held flags reflect keys currently down; the Pressed
// fields are edge-triggered and true at most once per physical press.
type Intents struct {
	MoveLeftHeld  bool
	MoveRightHeld bool

	ConfirmPressed bool
	PausePressed   bool
	QuitRequested  bool
}

// ClearPressed resets the edge-triggered events for the next frame.
// Held flags are recomputed by the input adapter every tick.
func (in *Intents) ClearPressed() {
	in.ConfirmPressed = false
	in.PausePressed = false
	in.QuitRequested = false
}
