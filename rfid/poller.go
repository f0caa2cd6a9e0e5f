// Package rfid implements the tag polling sub-state machine that sits between
// the lock controller and the RFID transceiver.
package rfid

import "fmt"

// ClassSingleTag is the presence class reported when exactly one ISO14443
// tag is in the field.
const ClassSingleTag byte = 0x04

// Tag is a decoded tag identifier.
type Tag byte

// NoTag is the identifier reported when no usable tag was read.
const NoTag Tag = 0x00

// Transceiver is the RFID reader collaborator.
type Transceiver interface {
	// WakeAndClassify wakes the field and returns the presence class.
	WakeAndClassify() (byte, error)

	// ReadIdentifier reads the identifier of the tag in the field.
	ReadIdentifier() (byte, error)
}

// State is the state of the poll sub-state machine.
type State int

// Poll states.
const (
	StateIdle State = iota
	StateQuerying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateQuerying:
		return "Querying"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Poller alternates between resetting the tag and querying the transceiver.
type Poller struct {
	transceiver Transceiver

	state State
	tag   Tag
	err   error
}

// NewPoller creates a Poller in the Idle state.
func NewPoller(t Transceiver) *Poller {
	if t == nil {
		panic("rfid: transceiver is required")
	}

	return &Poller{transceiver: t, state: StateIdle}
}

// Poll enters trigger, runs its action, then flips to the other state and
// runs that action too. The lock controller always passes StateIdle, so each
// call clears the tag and then queries the reader. It returns the state the
// poller ends in.
func (p *Poller) Poll(trigger State) State {
	p.err = nil

	p.state = trigger
	p.act()

	p.state = p.next()
	p.act()

	return p.state
}

func (p *Poller) next() State {
	switch p.state {
	case StateIdle:
		return StateQuerying
	case StateQuerying:
		return StateIdle
	default:
		return StateIdle
	}
}

func (p *Poller) act() {
	switch p.state {
	case StateIdle:
		p.tag = NoTag
	case StateQuerying:
		p.tag = p.query()
	}
}

func (p *Poller) query() Tag {
	class, err := p.transceiver.WakeAndClassify()
	if err != nil {
		p.err = fmt.Errorf("rfid: wake: %w", err)
		return NoTag
	}

	if class != ClassSingleTag {
		return NoTag
	}

	id, err := p.transceiver.ReadIdentifier()
	if err != nil {
		p.err = fmt.Errorf("rfid: read identifier: %w", err)
		return NoTag
	}

	return Tag(id)
}

// State returns the current poll state.
func (p *Poller) State() State {
	return p.state
}

// Tag returns the identifier produced by the last Poll.
func (p *Poller) Tag() Tag {
	return p.tag
}

// Err returns the transceiver error of the last Poll, if any. An error never
// produces a tag.
func (p *Poller) Err() error {
	return p.err
}
