package gpio

import "sync"

// MemoryInput is an InputPort whose value is set by the program. It stands
// in for the hardware in simulations and tests.
type MemoryInput struct {
	lock  sync.Mutex
	value uint8
	err   error
}

// NewMemoryInput creates an input port holding initial.
func NewMemoryInput(initial uint8) *MemoryInput {
	return &MemoryInput{value: initial}
}

// Set changes the value returned by the next reads.
func (p *MemoryInput) Set(v uint8) {
	p.lock.Lock()
	p.value = v
	p.lock.Unlock()
}

// FailWith makes the following reads return err. A nil err restores normal
// reads.
func (p *MemoryInput) FailWith(err error) {
	p.lock.Lock()
	p.err = err
	p.lock.Unlock()
}

// Read returns the current value.
func (p *MemoryInput) Read() (uint8, error) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.err != nil {
		return 0, p.err
	}

	return p.value, nil
}

// MemoryOutput is an OutputPort that keeps every written value.
type MemoryOutput struct {
	lock   sync.Mutex
	writes []uint8
}

// NewMemoryOutput creates an empty output port.
func NewMemoryOutput() *MemoryOutput {
	return &MemoryOutput{}
}

// Write records v.
func (p *MemoryOutput) Write(v uint8) error {
	p.lock.Lock()
	p.writes = append(p.writes, v)
	p.lock.Unlock()

	return nil
}

// Last returns the latest written value and false if nothing was written.
func (p *MemoryOutput) Last() (uint8, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.writes) == 0 {
		return 0, false
	}

	return p.writes[len(p.writes)-1], true
}

// Writes returns a copy of all written values.
func (p *MemoryOutput) Writes() []uint8 {
	p.lock.Lock()
	defer p.lock.Unlock()

	return append([]uint8(nil), p.writes...)
}

var (
	_ InputPort  = (*MemoryInput)(nil)
	_ OutputPort = (*MemoryOutput)(nil)
)
