package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/randomtoy/ideawheel/internal/adapters/clock"
)

func TestReal_AfterFunc(t *testing.T) {
	defer goleak.VerifyNone(t)

	done := make(chan time.Time, 1)
	start := clock.Real{}.Now()
	clock.Real{}.AfterFunc(5*time.Millisecond, func() { done <- time.Now() })

	select {
	case at := <-done:
		assert.GreaterOrEqual(t, at.Sub(start), 5*time.Millisecond)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "timer did not fire")
	}
}

func TestReal_Stop(t *testing.T) {
	defer goleak.VerifyNone(t)

	timer := clock.Real{}.AfterFunc(time.Hour, func() { assert.Fail(t, "stopped timer fired") })
	require.True(t, timer.Stop())
}
