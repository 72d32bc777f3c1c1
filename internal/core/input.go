package core

// Key is a decoded key press, as reported by the terminal backend.
// Anything the game does not understand is reported as KeyOther.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyP
	KeyQ
	KeyOther
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyW:
		return "w"
	case KeyA:
		return "a"
	case KeyS:
		return "s"
	case KeyD:
		return "d"
	case KeySpace:
		return "space"
	case KeyP:
		return "p"
	case KeyQ:
		return "q"
	default:
		return "other"
	}
}

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionFire         // Space
	ActionPause        // P - toggle pause
	ActionQuit         // Q
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForKey translates a decoded key to the action it triggers.
// Unrecognized keys map to ActionNone.
func ActionForKey(k Key) Action {
	switch k {
	case KeyUp, KeyW:
		return ActionUp
	case KeyDown, KeyS:
		return ActionDown
	case KeyLeft, KeyA:
		return ActionLeft
	case KeyRight, KeyD:
		return ActionRight
	case KeySpace:
		return ActionFire
	case KeyP:
		return ActionPause
	case KeyQ:
		return ActionQuit
	}
	return ActionNone
}
