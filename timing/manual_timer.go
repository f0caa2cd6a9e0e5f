package timing

import "sync/atomic"

// ManualTimer is a Timer whose interrupts are raised by the caller. It keeps
// the same countdown behavior as HardwareTimer, which makes it suitable for
// deterministic tests and simulations.
type ManualTimer struct {
	countdown

	running    atomic.Bool
	interrupts atomic.Uint64
}

// NewManualTimer creates a stopped, unarmed ManualTimer.
func NewManualTimer() *ManualTimer {
	return &ManualTimer{}
}

// Arm sets the tick period.
func (t *ManualTimer) Arm(periodMs uint32) error {
	return t.arm(periodMs)
}

// Start enables interrupt delivery.
func (t *ManualTimer) Start() error {
	if !t.armed() {
		return ErrNotArmed
	}

	if !t.running.CompareAndSwap(false, true) {
		return ErrTimerRunning
	}

	return nil
}

// Stop disables interrupt delivery.
func (t *ManualTimer) Stop() {
	t.running.Store(false)
}

// Elapsed returns the tick flag.
func (t *ManualTimer) Elapsed() *Flag {
	return &t.flag
}

// Interrupt raises one 1 ms interrupt. It is ignored while the timer is
// stopped. It returns true if the interrupt set the flag.
func (t *ManualTimer) Interrupt() bool {
	if !t.running.Load() {
		return false
	}

	t.interrupts.Add(1)

	return t.interrupt()
}

// Advance raises ms interrupts and returns how many of them set the flag.
func (t *ManualTimer) Advance(ms uint32) int {
	fired := 0

	for i := uint32(0); i < ms; i++ {
		if t.Interrupt() {
			fired++
		}
	}

	return fired
}

// AdvancePeriod raises exactly one period worth of interrupts.
func (t *ManualTimer) AdvancePeriod() int {
	return t.Advance(t.period.Load())
}

// Interrupts returns the number of interrupts delivered so far.
func (t *ManualTimer) Interrupts() uint64 {
	return t.interrupts.Load()
}

var _ Timer = (*ManualTimer)(nil)
