package ports

// PulseKind distinguishes feedback cues.
type PulseKind string

const (
	PulseTick    PulseKind = "tick"
	PulseSuccess PulseKind = "success"
)

// Feedback receives fire-and-forget haptic/audio cues. Implementations must
// not block.
type Feedback interface {
	Pulse(kind PulseKind)
}
