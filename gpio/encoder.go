package gpio

// Output bit layout.
const (
	LatchBit   = 0
	PackageBit = 1
	LevelBit   = 2
	LevelWidth = 4
	MaxLevel   = 4
)

// LevelPattern returns the bar pattern shown for an indicator level: level n
// lights the n lowest indicator bits.
func LevelPattern(level uint8) uint8 {
	if level > MaxLevel {
		level = MaxLevel
	}

	return uint8(1)<<level - 1
}

// Encoder composes frames into a shadow register and writes it to the output
// port. Bits the encoder does not own keep whatever value they had.
type Encoder struct {
	port        OutputPort
	reg         Register
	drivesLevel bool
}

// NewEncoder creates an encoder writing to port. The shadow register starts
// from initial.
func NewEncoder(port OutputPort, initial uint8) *Encoder {
	return &Encoder{port: port, reg: Register(initial)}
}

// DriveLevel makes the encoder own the indicator bits.
func (e *Encoder) DriveLevel(on bool) *Encoder {
	e.drivesLevel = on
	return e
}

// Compose returns the register value for f without writing it.
func (e *Encoder) Compose(f Frame) uint8 {
	r := e.reg
	r = SetBit(r, LatchBit, f.Latch)
	r = SetBit(r, PackageBit, f.Package)

	if e.drivesLevel {
		r = SetField(r, LevelBit, LevelWidth, LevelPattern(f.Level))
	}

	return uint8(r)
}

// WriteFrame composes f and writes the result to the port. The shadow
// register is updated even if the write fails, so the next tick retries with
// the latest value.
func (e *Encoder) WriteFrame(f Frame) error {
	e.reg = Register(e.Compose(f))
	return e.port.Write(uint8(e.reg))
}

// Value returns the shadow register.
func (e *Encoder) Value() uint8 {
	return uint8(e.reg)
}
