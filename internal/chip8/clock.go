package chip8

import "time"

// Clock abstracts the wall-clock operations of the scheduler. Runs become
// reproducible by substituting a manual clock, no opcode semantics depend
// on real time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep blocks for the given duration.
	Sleep(d time.Duration)
}

// Compile-time check to ensure systemClock implements Clock.
var _ Clock = systemClock{}

// systemClock implements Clock with the operating system time.
type systemClock struct{}

// NewSystemClock returns a Clock backed by the operating system time.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
