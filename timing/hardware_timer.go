package timing

import (
	"sync"
	"time"
)

// InterruptInterval is the period of the base interrupt that drives the
// countdown.
const InterruptInterval = time.Millisecond

// HardwareTimer delivers interrupts from a goroutine driven by a
// time.Ticker. The goroutine plays the part of the interrupt context.
type HardwareTimer struct {
	countdown

	lock sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewHardwareTimer creates a stopped, unarmed HardwareTimer.
func NewHardwareTimer() *HardwareTimer {
	return &HardwareTimer{}
}

// Arm sets the tick period. Arming a running timer takes effect immediately.
func (t *HardwareTimer) Arm(periodMs uint32) error {
	return t.arm(periodMs)
}

// Start launches the interrupt goroutine.
func (t *HardwareTimer) Start() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.stop != nil {
		return ErrTimerRunning
	}

	if !t.armed() {
		return ErrNotArmed
	}

	t.stop = make(chan struct{})
	t.done = make(chan struct{})

	go t.interruptLoop(t.stop, t.done)

	return nil
}

func (t *HardwareTimer) interruptLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(InterruptInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.interrupt()
		}
	}
}

// Stop halts the interrupt goroutine and waits for it to exit.
func (t *HardwareTimer) Stop() {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.stop == nil {
		return
	}

	close(t.stop)
	<-t.done

	t.stop = nil
	t.done = nil
}

// Elapsed returns the tick flag.
func (t *HardwareTimer) Elapsed() *Flag {
	return &t.flag
}

var _ Timer = (*HardwareTimer)(nil)
