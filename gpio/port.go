package gpio

// InputPort is a digital input port read once per tick.
type InputPort interface {
	Read() (uint8, error)
}

// OutputPort is a digital output port written once per tick.
type OutputPort interface {
	Write(v uint8) error
}

// Sensors are the named inputs sampled in one tick.
type Sensors struct {
	// Card is the direct RFID detect line (base variant only).
	Card bool

	// Presence is the IR package sensor.
	Presence bool

	// Keypad is the keypad credential line.
	Keypad bool
}

// Frame is the named output of one tick.
type Frame struct {
	// Latch is true when the latch is open.
	Latch bool

	// Package is true when the locker holds a package.
	Package bool

	// Level is the indicator level 0 (none) to 4; it is written only by
	// encoders that drive the indicator.
	Level uint8
}
