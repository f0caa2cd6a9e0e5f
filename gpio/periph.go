package gpio

import (
	"fmt"
	"sync"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var (
	hostInitOnce sync.Once
	hostInitErr  error
)

// InitHost loads the periph.io host drivers. It is safe to call many times.
func InitHost() error {
	hostInitOnce.Do(func() {
		_, hostInitErr = host.Init()
	})

	return hostInitErr
}

func lookupPins(names []string) ([]pgpio.PinIO, error) {
	if len(names) == 0 || len(names) > 8 {
		return nil, fmt.Errorf("gpio: a port needs 1 to 8 pins, got %d", len(names))
	}

	if err := InitHost(); err != nil {
		return nil, fmt.Errorf("gpio: host init: %w", err)
	}

	pins := make([]pgpio.PinIO, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}

		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpio: pin %q not found", name)
		}

		pins[i] = p
	}

	return pins, nil
}

// PeriphInput assembles an input port from up to eight named pins; pin i is
// bit i. Unnamed bits read 1, like an unconnected pulled-up input.
type PeriphInput struct {
	pins []pgpio.PinIO
}

// NewPeriphInput configures the named pins as pulled-up inputs.
func NewPeriphInput(names []string) (*PeriphInput, error) {
	pins, err := lookupPins(names)
	if err != nil {
		return nil, err
	}

	for i, p := range pins {
		if p == nil {
			continue
		}

		if err := p.In(pgpio.PullUp, pgpio.NoEdge); err != nil {
			return nil, fmt.Errorf("gpio: configure %s as input: %w", names[i], err)
		}
	}

	return &PeriphInput{pins: pins}, nil
}

// Read samples every pin.
func (p *PeriphInput) Read() (uint8, error) {
	r := Register(0xFF)

	for i, pin := range p.pins {
		if pin == nil {
			continue
		}

		r = SetBit(r, uint(i), pin.Read() == pgpio.High)
	}

	return uint8(r), nil
}

// PeriphOutput assembles an output port from up to eight named pins; bit i
// drives pin i.
type PeriphOutput struct {
	pins []pgpio.PinIO
}

// NewPeriphOutput configures the named pins as outputs driven low.
func NewPeriphOutput(names []string) (*PeriphOutput, error) {
	pins, err := lookupPins(names)
	if err != nil {
		return nil, err
	}

	o := &PeriphOutput{pins: pins}
	if err := o.Write(0); err != nil {
		return nil, err
	}

	return o, nil
}

// Write drives every pin from the matching bit of v.
func (p *PeriphOutput) Write(v uint8) error {
	for i, pin := range p.pins {
		if pin == nil {
			continue
		}

		level := pgpio.Low
		if GetBit(Register(v), uint(i)) {
			level = pgpio.High
		}

		if err := pin.Out(level); err != nil {
			return fmt.Errorf("gpio: drive %s: %w", pin.Name(), err)
		}
	}

	return nil
}

var (
	_ InputPort  = (*PeriphInput)(nil)
	_ OutputPort = (*PeriphOutput)(nil)
)
