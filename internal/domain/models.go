package domain

import "time"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// Item is a single selectable entry on the wheel.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Section is one angular slice of the wheel, tagged with its source item.
// Angles are in degrees; the slice covers [StartAngle, EndAngle).
type Section struct {
	Item       Item    `json:"item"`
	Index      int     `json:"index"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Color      string  `json:"color"`
}

// Width returns the angular width of the section in degrees.
func (s Section) Width() float64 {
	return s.EndAngle - s.StartAngle
}

// Phase is one state of the spin state machine.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseWindUp   Phase = "wind_up"
	PhaseSpinning Phase = "spinning"
	PhaseResolved Phase = "resolved"
)

// SpinState is a read-only snapshot of the wheel for renderers.
type SpinState struct {
	Phase Phase `json:"phase"`
	// RotationAngle is the accumulated target rotation. It only grows.
	RotationAngle float64 `json:"rotation_angle"`
	// DisplayAngle is the eased angle to draw right now.
	DisplayAngle  float64 `json:"display_angle"`
	PointerWobble float64 `json:"pointer_wobble"`
	Selected      *Item   `json:"selected,omitempty"`
	SpinCount     int     `json:"spin_count"`
}

// Idea is an entry on the idea board. Active ideas feed the wheel.
type Idea struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Note      string    `json:"note"`
	Archived  bool      `json:"archived"`
	Favorite  bool      `json:"favorite"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Item returns the wheel representation of the idea.
func (i Idea) Item() Item {
	return Item{ID: i.ID, Label: i.Title}
}

// Pick is a resolved spin recorded by the board.
type Pick struct {
	Item     Item      `json:"item"`
	Rotation float64   `json:"rotation"`
	PickedAt time.Time `json:"picked_at"`
}
