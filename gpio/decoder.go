package gpio

import "fmt"

// SensorMap assigns an input bit to each sensor.
type SensorMap struct {
	Card     uint
	Presence uint
	Keypad   uint
}

// DefaultSensorMap is the PakSafe wiring: card on bit 0, presence on bit 1 and
// keypad on bit 2.
var DefaultSensorMap = SensorMap{Card: 0, Presence: 1, Keypad: 2}

// Validate makes sure every sensor has its own bit within the byte.
func (m SensorMap) Validate() error {
	bits := []uint{m.Card, m.Presence, m.Keypad}
	seen := map[uint]bool{}

	for _, b := range bits {
		if b > 7 {
			return fmt.Errorf("gpio: sensor bit %d out of range", b)
		}

		if seen[b] {
			return fmt.Errorf("gpio: sensor bit %d assigned twice", b)
		}

		seen[b] = true
	}

	return nil
}

// Decoder turns a raw input byte into Sensors.
type Decoder struct {
	Map SensorMap

	// ActiveLow inverts the raw value first. Inputs with pull-ups read 1 when
	// idle.
	ActiveLow bool
}

// NewDecoder creates a decoder for the default wiring.
func NewDecoder() Decoder {
	return Decoder{Map: DefaultSensorMap, ActiveLow: true}
}

// Decode returns the sensors asserted in raw.
func (d Decoder) Decode(raw uint8) Sensors {
	r := Register(raw)
	if d.ActiveLow {
		r = ^r
	}

	return Sensors{
		Card:     GetBit(r, d.Map.Card),
		Presence: GetBit(r, d.Map.Presence),
		Keypad:   GetBit(r, d.Map.Keypad),
	}
}

// Encode is the inverse of Decode. Bits that carry no sensor read idle.
func (d Decoder) Encode(s Sensors) uint8 {
	var r Register
	r = SetBit(r, d.Map.Card, s.Card)
	r = SetBit(r, d.Map.Presence, s.Presence)
	r = SetBit(r, d.Map.Keypad, s.Keypad)

	if d.ActiveLow {
		r = ^r
	}

	return uint8(r)
}
