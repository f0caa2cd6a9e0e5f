package scenario

import (
	"context"
	"fmt"

	"github.com/paksafe/paksafe/display"
	"github.com/paksafe/paksafe/gpio"
	"github.com/paksafe/paksafe/instrumentation/hooking"
	"github.com/paksafe/paksafe/locker"
	"github.com/paksafe/paksafe/rfid"
	"github.com/paksafe/paksafe/scheduler"
	"github.com/paksafe/paksafe/timing"
)

// Record is the outcome of one simulated tick.
type Record struct {
	Step int
	locker.Snapshot
	Raw  uint8
	Port uint8
}

func (r Record) String() string {
	latch := LatchClosed
	if r.Frame.Latch {
		latch = LatchOpen
	}

	return fmt.Sprintf(
		"tick %3d  step %2d  in 0x%02X  tag 0x%02X  %-17s latch %-6s port 0x%02X  count %d  %q",
		r.Cycle, r.Step, r.Raw, uint8(r.Tag), r.State, latch, r.Port,
		r.PackageCount, r.Message)
}

// Runner runs a scenario on memory ports, a recording display, a tag field
// and a manual timer.
type Runner struct {
	scenario *Scenario
	decoder  gpio.Decoder
	hooks    []hooking.Hook

	in         *gpio.MemoryInput
	out        *gpio.MemoryOutput
	encoder    *gpio.Encoder
	screen     *display.RecordingDisplay
	field      *rfid.Field
	timer      *timing.ManualTimer
	controller *locker.Controller
	loop       *scheduler.Loop
	sample     scheduler.Sample
}

// NewRunner wires a fresh controller for s.
func NewRunner(s *Scenario) *Runner {
	r := &Runner{
		scenario: s,
		decoder:  gpio.NewDecoder(),
		in:       gpio.NewMemoryInput(0),
		out:      gpio.NewMemoryOutput(),
		screen:   display.NewRecordingDisplay(),
		field:    rfid.NewField(),
		timer:    timing.NewManualTimer(),
	}

	variant := s.LockerVariant()

	r.in.Set(r.decoder.Encode(gpio.Sensors{}))
	r.encoder = gpio.NewEncoder(r.out, 0).DriveLevel(variant.DrivesIndicator())

	r.controller = locker.MakeBuilder().
		WithVariant(variant).
		WithCredentials(s.LockerCredentials()).
		WithOutput(r.encoder).
		WithDisplay(r.screen).
		WithTransceiver(r.field).
		Build("PakSafe")

	r.loop = scheduler.MakeBuilder().
		WithInput(r.in).
		WithDecoder(r.decoder).
		WithStepper(r.controller).
		WithTimer(r.timer).
		WithPeriod(s.Period()).
		Build("Loop")

	r.loop.AcceptHook(hooking.HookFunc(r.keepSample))

	return r
}

func (r *Runner) keepSample(ctx hooking.HookCtx) {
	if ctx.Pos == scheduler.HookPosSample {
		r.sample = ctx.Item.(scheduler.Sample)
	}
}

// AcceptHook attaches hook to both the controller and the control loop.
func (r *Runner) AcceptHook(hook hooking.Hook) {
	r.controller.AcceptHook(hook)
	r.loop.AcceptHook(hook)
}

// Controller returns the controller under simulation.
func (r *Runner) Controller() *locker.Controller {
	return r.controller
}

// Period returns the tick period of the run.
func (r *Runner) Period() uint32 {
	return r.loop.Period()
}

// Run plays every step. It returns the records of all ticks played so far
// and an error wrapping ErrExpectation at the first step whose expectation
// fails.
func (r *Runner) Run(ctx context.Context) ([]Record, error) {
	if err := r.loop.Start(); err != nil {
		return nil, err
	}
	defer r.loop.Stop()

	var records []Record

	for i, step := range r.scenario.Steps {
		r.in.Set(r.decoder.Encode(gpio.Sensors{
			Card:     step.Card,
			Presence: step.Presence,
			Keypad:   step.Keypad,
		}))
		r.field.Hold(rfid.Tag(step.Tag))

		for n := 0; n < step.Ticks(); n++ {
			rec, err := r.tick(ctx, i+1)
			if err != nil {
				return records, err
			}

			records = append(records, rec)
		}

		if step.Expect == nil {
			continue
		}

		if err := check(records[len(records)-1], *step.Expect); err != nil {
			return records, err
		}
	}

	return records, nil
}

func (r *Runner) tick(ctx context.Context, step int) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	if err := r.loop.Iterate(); err != nil {
		return Record{}, fmt.Errorf("scenario: step %d: %w", step, err)
	}

	r.timer.AdvancePeriod()

	if err := r.loop.WaitTick(ctx); err != nil {
		return Record{}, err
	}

	return Record{
		Step:     step,
		Snapshot: r.controller.Snapshot(),
		Raw:      r.sample.Raw,
		Port:     r.encoder.Value(),
	}, nil
}

func check(rec Record, want Expect) error {
	fail := func(what string, got, expected any) error {
		return fmt.Errorf("%w: step %d, tick %d: %s is %v, want %v",
			ErrExpectation, rec.Step, rec.Cycle, what, got, expected)
	}

	if want.State != "" {
		s, _ := locker.ParseState(want.State)
		if rec.State != s {
			return fail("state", rec.State, s)
		}
	}

	if want.Latch != "" {
		open := want.Latch == LatchOpen
		if rec.Frame.Latch != open {
			return fail("latch open", rec.Frame.Latch, open)
		}
	}

	if want.Display != "" && rec.Message != want.Display {
		return fail("display", fmt.Sprintf("%q", rec.Message),
			fmt.Sprintf("%q", want.Display))
	}

	if want.PackageCount != nil && rec.PackageCount != *want.PackageCount {
		return fail("package count", rec.PackageCount, *want.PackageCount)
	}

	if want.Port != nil && rec.Port != *want.Port {
		return fail("port", fmt.Sprintf("0x%02X", rec.Port),
			fmt.Sprintf("0x%02X", *want.Port))
	}

	return nil
}
