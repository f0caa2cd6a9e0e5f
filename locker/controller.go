// Package locker implements the PakSafe lock controller, the state machine
// that owns the latch, counts packages, drives the display and, in the RFID
// variant, polls the tag reader.
//
// Each Step runs three phases in order. Sense gathers the inputs of the tick
// (polling the reader when the variant needs it). Transition computes the next
// state from the current state and the inputs without side effects. Act
// applies the entry outputs of the new state to the display and the output
// port.
package locker

import (
	"errors"
	"fmt"

	"github.com/paksafe/paksafe/display"
	"github.com/paksafe/paksafe/gpio"
	"github.com/paksafe/paksafe/instrumentation/hooking"
	"github.com/paksafe/paksafe/rfid"
)

// HookPosStateChange marks a change of lock state. The item is a StateChange.
var HookPosStateChange = &hooking.HookPos{Name: "StateChange"}

// HookPosAfterStep fires at the end of every step. The item is a Snapshot.
var HookPosAfterStep = &hooking.HookPos{Name: "AfterStep"}

// HookPosFault reports a collaborator error. The item is the error.
var HookPosFault = &hooking.HookPos{Name: "Fault"}

// OutputSink receives the output frame of every tick.
type OutputSink interface {
	WriteFrame(f gpio.Frame) error
}

// StateChange describes one transition between two different states.
type StateChange struct {
	Cycle uint64
	From  State
	To    State
}

// Snapshot is the observable state of the controller after a step.
type Snapshot struct {
	Cycle        uint64
	State        State
	Display      display.State
	Message      string
	PackageCount uint
	Tag          rfid.Tag
	Frame        gpio.Frame
}

// Controller is the lock state machine. Every piece of controller state lives
// here; a Controller is only ever used from the control loop.
type Controller struct {
	*hooking.HookableBase

	name        string
	variant     Variant
	credentials Credentials

	out     OutputSink
	display *display.FSM
	poller  *rfid.Poller

	state        State
	packageCount uint
	tag          rfid.Tag
	frame        gpio.Frame
	cycle        uint64
}

// Name returns the name of the controller.
func (c *Controller) Name() string {
	return c.name
}

// Variant returns the variant the controller was built for.
func (c *Controller) Variant() Variant {
	return c.variant
}

// State returns the current lock state.
func (c *Controller) State() State {
	return c.state
}

// PackageCount returns the number of deliveries since the locker was last
// emptied. It only counts in the RFID variant.
func (c *Controller) PackageCount() uint {
	return c.packageCount
}

// Step runs one tick of the controller with the sensors sampled for this
// tick. Collaborator errors do not stop the step; they are returned after the
// state has been updated.
func (c *Controller) Step(sensors gpio.Sensors) error {
	c.cycle++

	in := c.sense(sensors)

	from := c.state
	c.state = Transition(c.variant, c.credentials, from, in)
	c.count(from, c.state)

	if from != c.state {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    HookPosStateChange,
			Item:   StateChange{Cycle: c.cycle, From: from, To: c.state},
		})
	}

	err := c.act()
	if err != nil {
		c.fault(err)
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosAfterStep,
		Item:   c.Snapshot(),
	})

	return err
}

// sense completes the inputs of the tick. The reader is polled only while
// the latch is closed, so a tag held against the reader cannot retrigger an
// unlock before the locker closes again.
func (c *Controller) sense(sensors gpio.Sensors) Inputs {
	in := Inputs{Sensors: sensors, Tag: rfid.NoTag}

	if c.variant == VariantRFID && c.state.IsLocked() {
		c.poller.Poll(rfid.StateIdle)
		in.Tag = c.poller.Tag()

		if err := c.poller.Err(); err != nil {
			c.fault(err)
		}
	}

	c.tag = in.Tag

	return in
}

func (c *Controller) count(from, to State) {
	if c.variant != VariantRFID || from == to {
		return
	}

	switch to {
	case StateUnlockedByCard:
		c.packageCount++
	case StateLockedEmpty:
		c.packageCount = 0
	}
}

func (c *Controller) act() error {
	outputs, ok := entryOutputs(c.state)
	if !ok {
		return nil
	}

	c.frame = gpio.Frame{Latch: outputs.Latch, Package: outputs.Package}
	if c.variant.DrivesIndicator() {
		c.frame.Level = IndicatorLevel(c.packageCount)
	}

	if c.state == StateLockedEmpty {
		displayErr := c.display.Step(outputs.Package)
		portErr := c.writeFrame()
		return errors.Join(displayErr, portErr)
	}

	portErr := c.writeFrame()
	displayErr := c.display.Step(outputs.Package)

	return errors.Join(portErr, displayErr)
}

func (c *Controller) writeFrame() error {
	if err := c.out.WriteFrame(c.frame); err != nil {
		return fmt.Errorf("locker: write output: %w", err)
	}

	return nil
}

func (c *Controller) fault(err error) {
	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosFault,
		Item:   err,
	})
}

// Snapshot returns the observable state of the controller.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Cycle:        c.cycle,
		State:        c.state,
		Display:      c.display.State(),
		Message:      c.display.Message(),
		PackageCount: c.packageCount,
		Tag:          c.tag,
		Frame:        c.frame,
	}
}
