// Package gpio is the hardware boundary of the controller. It turns raw port
// bytes into named sensor values and named outputs back into port bytes.
// Nothing above this package manipulates bit positions.
package gpio

// Register is a byte-wide port value.
type Register uint8

// SetBit returns r with bit k set to b.
func SetBit(r Register, k uint, b bool) Register {
	if b {
		return r | (1 << k)
	}

	return r &^ (1 << k)
}

// ClearBit returns r with bit k cleared.
func ClearBit(r Register, k uint) Register {
	return SetBit(r, k, false)
}

// GetBit reports whether bit k of r is set.
func GetBit(r Register, k uint) bool {
	return r&(1<<k) != 0
}

// SetField writes the low width bits of v into r starting at bit k, leaving
// the other bits untouched.
func SetField(r Register, k, width uint, v uint8) Register {
	mask := (Register(1)<<width - 1) << k
	return (r &^ mask) | (Register(v)<<k)&mask
}
