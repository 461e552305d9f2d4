package app

// Event is an input delivered to a Session.
type Event interface {
	isEvent()
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	// MouseLeft toggles cells.
	MouseLeft MouseButton = iota
	// MouseRight toggles play.
	MouseRight
	// MouseMiddle is ignored.
	MouseMiddle
)

// Command is a keyboard-driven action.
type Command int

const (
	// CommandTogglePlay starts or pauses the simulation.
	CommandTogglePlay Command = iota
	// CommandStepOnce advances a single generation while paused.
	CommandStepOnce
	// CommandClear kills every cell.
	CommandClear
	// CommandRandomize fills the grid from the configured seed.
	CommandRandomize
	// CommandQuit ends the session.
	CommandQuit
)

// QuitEvent ends the session.
type QuitEvent struct{}

// MouseDownEvent reports a button press at window pixel (X, Y).
type MouseDownEvent struct {
	Button MouseButton
	X, Y   int
}

// ResizeEvent reports the new real window size.
type ResizeEvent struct {
	Width, Height int
}

// CommandEvent carries a keyboard command.
type CommandEvent struct {
	Command Command
}

func (QuitEvent) isEvent()      {}
func (MouseDownEvent) isEvent() {}
func (ResizeEvent) isEvent()    {}
func (CommandEvent) isEvent()   {}
