package locker

import (
	"github.com/paksafe/paksafe/gpio"
	"github.com/paksafe/paksafe/rfid"
)

// Credentials are the tag identifiers accepted by the RFID variant.
type Credentials struct {
	// Primary opens the locker for a delivery.
	Primary rfid.Tag

	// Secondary opens the locker for a pickup.
	Secondary rfid.Tag
}

// DefaultCredentials are the factory tag identifiers.
var DefaultCredentials = Credentials{Primary: 0xD0, Secondary: 0x1B}

// Inputs are everything the transition of one tick depends on.
type Inputs struct {
	gpio.Sensors

	// Tag is the identifier polled this tick (RFID variant).
	Tag rfid.Tag
}

// credentials resolves which credential, if any, was presented. The card
// credential takes precedence.
func credentials(v Variant, cred Credentials, in Inputs) (card, keypad bool) {
	if v == VariantRFID {
		return in.Tag == cred.Primary, in.Tag == cred.Secondary
	}

	return in.Card, in.Keypad
}

// Transition returns the state that follows s for the given inputs. It has no
// side effects. An unknown state resets to StateInit.
func Transition(v Variant, cred Credentials, s State, in Inputs) State {
	card, keypad := credentials(v, cred, in)

	switch s {
	case StateInit:
		return StateLockedEmpty

	case StateLockedEmpty, StateLockedWithPackage:
		if card {
			return StateUnlockedByCard
		}
		if keypad {
			return StateUnlockedByKeypad
		}
		return s

	case StateUnlockedByCard:
		if v == VariantRFID || in.Presence {
			return StateLockedWithPackage
		}
		return s

	case StateUnlockedByKeypad:
		if v == VariantRFID || in.Presence {
			return StateLockedEmpty
		}
		return s

	default:
		return StateInit
	}
}

// Outputs are the named outputs a state sets on entry.
type Outputs struct {
	// Latch is true when the latch is open.
	Latch bool

	// Package is true when the locker reports a package inside.
	Package bool
}

// entryOutputs returns the outputs of s and false for states that set
// nothing.
func entryOutputs(s State) (Outputs, bool) {
	switch s {
	case StateLockedEmpty:
		return Outputs{Latch: false, Package: false}, true
	case StateUnlockedByCard:
		return Outputs{Latch: true, Package: true}, true
	case StateLockedWithPackage:
		return Outputs{Latch: false, Package: true}, true
	case StateUnlockedByKeypad:
		return Outputs{Latch: true, Package: false}, true
	default:
		return Outputs{}, false
	}
}

// IndicatorLevel maps a package count to the indicator level: 1 to 4, with
// every count above 4 shown as 4.
func IndicatorLevel(count uint) uint8 {
	if count > gpio.MaxLevel {
		return gpio.MaxLevel
	}

	return uint8(count)
}
