package scheduler

import (
	"github.com/paksafe/paksafe/gpio"
	"github.com/paksafe/paksafe/instrumentation/hooking"
	"github.com/paksafe/paksafe/timing"
)

// Builder can build control loops.
type Builder struct {
	in       gpio.InputPort
	decoder  gpio.Decoder
	stepper  Stepper
	timer    timing.Timer
	periodMs uint32
}

// MakeBuilder creates a Builder with the default decoder and the base tick
// period.
func MakeBuilder() Builder {
	return Builder{
		decoder:  gpio.NewDecoder(),
		periodMs: timing.DefaultBasePeriodMs,
	}
}

// WithInput sets the input port sampled every tick.
func (b Builder) WithInput(in gpio.InputPort) Builder {
	b.in = in
	return b
}

// WithDecoder sets how raw input bytes map to sensors.
func (b Builder) WithDecoder(d gpio.Decoder) Builder {
	b.decoder = d
	return b
}

// WithStepper sets the controller stepped every tick.
func (b Builder) WithStepper(s Stepper) Builder {
	b.stepper = s
	return b
}

// WithTimer sets the tick source.
func (b Builder) WithTimer(t timing.Timer) Builder {
	b.timer = t
	return b
}

// WithPeriod sets the tick period in milliseconds.
func (b Builder) WithPeriod(ms uint32) Builder {
	b.periodMs = ms
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.in == nil {
		panic("scheduler: input port is required")
	}

	if b.stepper == nil {
		panic("scheduler: stepper is required")
	}

	if b.timer == nil {
		panic("scheduler: timer is required")
	}

	if b.periodMs == 0 {
		panic("scheduler: period must be at least 1 ms")
	}

	if err := b.decoder.Map.Validate(); err != nil {
		panic(err)
	}
}

// Build creates a Loop.
func (b Builder) Build(name string) *Loop {
	b.parametersMustBeValid()

	return &Loop{
		HookableBase: hooking.NewHookableBase(),
		name:         name,
		in:           b.in,
		decoder:      b.decoder,
		stepper:      b.stepper,
		timer:        b.timer,
		periodMs:     b.periodMs,
	}
}
