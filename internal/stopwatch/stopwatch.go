package stopwatch

import (
	"github.com/loov/hrtime"
	"time"
)

// Stopwatch - Brackets one contiguous measured region using the high resolution monotonic
// clock. There is no stop state, the watch is read as many times as needed and every reading
// is relative to the same start.
type Stopwatch struct {
	start time.Duration
}

// Start - Returns a Stopwatch started at the time of the call
func Start() Stopwatch {
	return Stopwatch{start: hrtime.Now()}
}

// Elapsed - Returns the time passed since Start
func (S Stopwatch) Elapsed() time.Duration {
	return hrtime.Since(S.start)
}

// Seconds - Returns the time passed since Start in seconds
func (S Stopwatch) Seconds() float64 {
	return S.Elapsed().Seconds()
}
