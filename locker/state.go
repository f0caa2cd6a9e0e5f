package locker

import (
	"fmt"
	"strings"
)

// State is the state of the lock controller.
type State int

// Lock states.
const (
	StateInit State = iota
	StateLockedEmpty
	StateUnlockedByCard
	StateLockedWithPackage
	StateUnlockedByKeypad
)

var stateNames = map[State]string{
	StateInit:              "Init",
	StateLockedEmpty:       "LockedEmpty",
	StateUnlockedByCard:    "UnlockedByCard",
	StateLockedWithPackage: "LockedWithPackage",
	StateUnlockedByKeypad:  "UnlockedByKeypad",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// IsLocked reports whether the latch is closed in s.
func (s State) IsLocked() bool {
	return s == StateLockedEmpty || s == StateLockedWithPackage
}

// ParseState converts a state name back into a State. Matching ignores case.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}

	return StateInit, fmt.Errorf("locker: unknown state %q", name)
}

// Variant selects the hardware configuration the controller runs on.
type Variant int

// Controller variants.
const (
	// VariantBase reads the card, presence and keypad lines directly.
	VariantBase Variant = iota

	// VariantRFID reads credentials from an RFID transceiver and has no
	// presence sensor.
	VariantRFID
)

func (v Variant) String() string {
	switch v {
	case VariantBase:
		return "base"
	case VariantRFID:
		return "rfid"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// DrivesIndicator reports whether the variant shows the package count on the
// output port.
func (v Variant) DrivesIndicator() bool {
	return v == VariantRFID
}

// ParseVariant converts "base" or "rfid" into a Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "base", "":
		return VariantBase, nil
	case "rfid":
		return VariantRFID, nil
	default:
		return VariantBase, fmt.Errorf("locker: unknown variant %q", name)
	}
}
