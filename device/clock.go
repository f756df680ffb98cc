package device

import "time"

// Clock supplies the per-frame timestamp consumed by action.State.Tick.
// The indirection exists so tests can drive time by hand.
type Clock func() time.Time

// SystemClock reads the wall clock; time.Time carries a monotonic
// reading on all supported platforms, which is what Tick assumes.
func SystemClock() time.Time {
	return time.Now()
}
