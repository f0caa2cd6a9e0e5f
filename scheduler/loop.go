// Package scheduler runs the PakSafe control loop. Every tick the loop samples
// the input port, steps the controller exactly once and then waits for the
// timer flag. Ticks that elapse while a step is still running coalesce into
// one.
package scheduler

import (
	"context"
	"fmt"
	"runtime"

	"github.com/paksafe/paksafe/gpio"
	"github.com/paksafe/paksafe/instrumentation/hooking"
	"github.com/paksafe/paksafe/timing"
)

// HookPosSample fires after the inputs of a tick are decoded. The item is a
// Sample.
var HookPosSample = &hooking.HookPos{Name: "Sample"}

// HookPosFault reports an input port error. The item is the error.
var HookPosFault = &hooking.HookPos{Name: "LoopFault"}

// A Stepper consumes the sensors of one tick.
type Stepper interface {
	Step(sensors gpio.Sensors) error
}

// Sample is the input of one tick.
type Sample struct {
	Tick    uint64
	Raw     uint8
	Sensors gpio.Sensors
}

// Loop drives a Stepper from a Timer.
type Loop struct {
	*hooking.HookableBase

	name     string
	in       gpio.InputPort
	decoder  gpio.Decoder
	stepper  Stepper
	timer    timing.Timer
	periodMs uint32

	tick uint64
}

// Name returns the name of the loop.
func (l *Loop) Name() string {
	return l.name
}

// Period returns the tick period in milliseconds.
func (l *Loop) Period() uint32 {
	return l.periodMs
}

// Ticks returns how many iterations have run.
func (l *Loop) Ticks() uint64 {
	return l.tick
}

// Iterate reads the input port and steps the controller once. If the port
// cannot be read the step is skipped for this tick.
func (l *Loop) Iterate() error {
	l.tick++

	raw, err := l.in.Read()
	if err != nil {
		err = fmt.Errorf("scheduler: read input: %w", err)
		l.InvokeHook(hooking.HookCtx{
			Domain: l,
			Pos:    HookPosFault,
			Item:   err,
		})

		return err
	}

	sample := Sample{Tick: l.tick, Raw: raw, Sensors: l.decoder.Decode(raw)}
	l.InvokeHook(hooking.HookCtx{
		Domain: l,
		Pos:    HookPosSample,
		Item:   sample,
	})

	return l.stepper.Step(sample.Sensors)
}

// WaitTick blocks until the timer flag is set and clears it. It returns the
// context error if ctx is done first.
func (l *Loop) WaitTick(ctx context.Context) error {
	flag := l.timer.Elapsed()

	for !flag.TakeIfSet() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		runtime.Gosched()
	}

	return nil
}

// Start arms and starts the timer. Any tick left over from an earlier run is
// dropped.
func (l *Loop) Start() error {
	if err := l.timer.Arm(l.periodMs); err != nil {
		return fmt.Errorf("scheduler: arm timer: %w", err)
	}

	l.timer.Elapsed().Clear()

	if err := l.timer.Start(); err != nil {
		return fmt.Errorf("scheduler: start timer: %w", err)
	}

	return nil
}

// Stop stops the timer.
func (l *Loop) Stop() {
	l.timer.Stop()
}

// Run starts the timer and iterates once per tick until ctx is done. Step
// errors do not stop the loop; they are reported through hooks. Run always
// returns a non-nil error.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Start(); err != nil {
		return err
	}
	defer l.Stop()

	for {
		_ = l.Iterate()

		if err := l.WaitTick(ctx); err != nil {
			return err
		}
	}
}

// RunTicks is Run limited to n iterations.
func (l *Loop) RunTicks(ctx context.Context, n int) error {
	if err := l.Start(); err != nil {
		return err
	}
	defer l.Stop()

	for i := 0; i < n; i++ {
		_ = l.Iterate()

		if err := l.WaitTick(ctx); err != nil {
			return err
		}
	}

	return nil
}
