package clock

import (
	"time"

	"github.com/randomtoy/ideawheel/internal/ports"
)

// Real implements ports.Clock on the wall clock. Callbacks run on their own
// goroutines, as with time.AfterFunc.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
