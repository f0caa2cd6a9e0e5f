// Package timing provides the periodic tick source of the controller.
//
// A Timer models a hardware timer that raises an interrupt every millisecond.
// The interrupt counts down from the armed period and, when the count reaches
// zero, sets the elapsed Flag and reloads the count. The control loop polls
// the flag; nothing else is shared between the two contexts.
package timing

import (
	"errors"
	"sync/atomic"
)

// Default periods of the two controller variants.
const (
	DefaultBasePeriodMs uint32 = 10
	DefaultRFIDPeriodMs uint32 = 80
)

var (
	// ErrZeroPeriod is returned when a timer is armed with a zero period.
	ErrZeroPeriod = errors.New("timing: period must be at least 1 ms")

	// ErrTimerRunning is returned when starting a timer that already runs.
	ErrTimerRunning = errors.New("timing: timer already running")

	// ErrNotArmed is returned when starting a timer that was never armed.
	ErrNotArmed = errors.New("timing: timer not armed")
)

// A Timer asserts its Elapsed flag once every armed period.
type Timer interface {
	// Arm sets the period in milliseconds and restarts the countdown.
	Arm(periodMs uint32) error

	// Start begins delivering interrupts.
	Start() error

	// Stop halts interrupt delivery. Stopping a stopped timer does nothing.
	Stop()

	// Elapsed returns the flag that the interrupt sets.
	Elapsed() *Flag
}

// countdown is the interrupt-side state of a timer: the reload value and the
// number of 1 ms interrupts left before the flag is set.
type countdown struct {
	period  atomic.Uint32
	current atomic.Uint32
	flag    Flag
}

func (c *countdown) arm(periodMs uint32) error {
	if periodMs == 0 {
		return ErrZeroPeriod
	}

	c.period.Store(periodMs)
	c.current.Store(periodMs)

	return nil
}

func (c *countdown) armed() bool {
	return c.period.Load() != 0
}

// interrupt handles one 1 ms interrupt and reports whether the flag was set.
func (c *countdown) interrupt() bool {
	if c.current.Add(^uint32(0)) != 0 {
		return false
	}

	c.flag.Set()
	c.current.Store(c.period.Load())

	return true
}
