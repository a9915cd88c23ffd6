package dateparse

import "github.com/jonboulle/clockwork"

// clock supplies the default year for formats that omit one. Tests pin it
// via SetClock for deterministic output.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
