package editor

// Mode tells whether the model is committing edits or replaying history.
// Modes never nest.
type Mode int

const (
	// ModeNormal commits genuine edits.
	ModeNormal Mode = iota
	// ModeReplayingUndo is active while undo or timeline navigation rewrites
	// the buffer.
	ModeReplayingUndo
	// ModeReplayingRedo is active while redo rewrites the buffer.
	ModeReplayingRedo
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeReplayingUndo:
		return "replaying-undo"
	case ModeReplayingRedo:
		return "replaying-redo"
	default:
		return "unknown"
	}
}

// Replaying reports whether buffer changes are currently suppressed.
func (m Mode) Replaying() bool {
	return m == ModeReplayingUndo || m == ModeReplayingRedo
}
