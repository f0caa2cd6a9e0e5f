// Package display drives the locker's character display from the package
// presence signal.
package display

import "fmt"

// Messages shown on the display.
const (
	MessageEmpty   = "PakSafe is empty"
	MessagePackage = "Package inside"
)

// MessageLine is the display line the messages are written to.
const MessageLine = 1

// Display is the character display collaborator.
type Display interface {
	Clear() error
	WriteString(line int, s string) error
}

// State is the state of the display sub-state machine.
type State int

// Display states.
const (
	StateInit State = iota
	StateShowEmpty
	StateShowPackage
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateShowEmpty:
		return "ShowEmpty"
	case StateShowPackage:
		return "ShowPackage"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FSM renders one of two messages depending on whether a package is present.
// It only changes when Step is called.
type FSM struct {
	display Display

	state   State
	message string
}

// NewFSM creates an FSM in the Init state.
func NewFSM(d Display) *FSM {
	if d == nil {
		panic("display: display is required")
	}

	return &FSM{display: d, state: StateInit}
}

// Step moves to the state matching packagePresent and redraws. The first call
// always shows the empty message.
func (f *FSM) Step(packagePresent bool) error {
	f.state = transition(f.state, packagePresent)
	return f.act()
}

func transition(s State, packagePresent bool) State {
	switch s {
	case StateInit:
		return StateShowEmpty
	case StateShowEmpty, StateShowPackage:
		if packagePresent {
			return StateShowPackage
		}
		return StateShowEmpty
	default:
		return StateInit
	}
}

func (f *FSM) act() error {
	switch f.state {
	case StateShowEmpty:
		return f.draw(MessageEmpty)
	case StateShowPackage:
		return f.draw(MessagePackage)
	default:
		return nil
	}
}

func (f *FSM) draw(msg string) error {
	if err := f.display.Clear(); err != nil {
		return fmt.Errorf("display: clear: %w", err)
	}

	f.message = ""

	if err := f.display.WriteString(MessageLine, msg); err != nil {
		return fmt.Errorf("display: write: %w", err)
	}

	f.message = msg

	return nil
}

// State returns the current state.
func (f *FSM) State() State {
	return f.state
}

// Message returns the message on the display, or "" if nothing was drawn.
func (f *FSM) Message() string {
	return f.message
}
