package timing

import "sync/atomic"

// Flag is the single bit shared between the timer interrupt and the control
// loop. The interrupt side only ever sets it; the loop side reads and clears
// it.
type Flag struct {
	v atomic.Bool
}

// Set marks the tick as elapsed. Setting an already set flag loses the older
// tick.
func (f *Flag) Set() {
	f.v.Store(true)
}

// IsSet reports whether a tick has elapsed and has not been taken yet.
func (f *Flag) IsSet() bool {
	return f.v.Load()
}

// TakeIfSet clears the flag and returns true if it was set.
func (f *Flag) TakeIfSet() bool {
	return f.v.CompareAndSwap(true, false)
}

// Clear drops any pending tick.
func (f *Flag) Clear() {
	f.v.Store(false)
}
