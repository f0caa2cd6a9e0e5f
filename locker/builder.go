package locker

import (
	"github.com/paksafe/paksafe/display"
	"github.com/paksafe/paksafe/instrumentation/hooking"
	"github.com/paksafe/paksafe/rfid"
)

// Builder can build lock controllers.
type Builder struct {
	variant     Variant
	credentials Credentials
	out         OutputSink
	display     display.Display
	transceiver rfid.Transceiver
}

// MakeBuilder creates a Builder for the base variant with the default
// credentials.
func MakeBuilder() Builder {
	return Builder{
		variant:     VariantBase,
		credentials: DefaultCredentials,
	}
}

// WithVariant sets the variant.
func (b Builder) WithVariant(v Variant) Builder {
	b.variant = v
	return b
}

// WithCredentials sets the accepted tag identifiers.
func (b Builder) WithCredentials(c Credentials) Builder {
	b.credentials = c
	return b
}

// WithOutput sets where the output frame of each tick is written.
func (b Builder) WithOutput(out OutputSink) Builder {
	b.out = out
	return b
}

// WithDisplay sets the character display.
func (b Builder) WithDisplay(d display.Display) Builder {
	b.display = d
	return b
}

// WithTransceiver sets the RFID reader. It is required by the RFID variant and
// ignored by the base variant.
func (b Builder) WithTransceiver(t rfid.Transceiver) Builder {
	b.transceiver = t
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.out == nil {
		panic("locker: output is required")
	}

	if b.display == nil {
		panic("locker: display is required")
	}

	if b.variant != VariantBase && b.variant != VariantRFID {
		panic("locker: unknown variant " + b.variant.String())
	}

	if b.variant == VariantRFID && b.transceiver == nil {
		panic("locker: the rfid variant requires a transceiver")
	}

	if b.variant == VariantRFID {
		b.credentialsMustBeValid()
	}
}

func (b Builder) credentialsMustBeValid() {
	c := b.credentials

	if c.Primary == rfid.NoTag || c.Secondary == rfid.NoTag {
		panic("locker: a credential cannot be the empty tag")
	}

	if c.Primary == c.Secondary {
		panic("locker: the credentials must be distinct tags")
	}
}

// Build creates a Controller in the Init state.
func (b Builder) Build(name string) *Controller {
	b.parametersMustBeValid()

	c := &Controller{
		HookableBase: hooking.NewHookableBase(),
		name:         name,
		variant:      b.variant,
		credentials:  b.credentials,
		out:          b.out,
		display:      display.NewFSM(b.display),
		state:        StateInit,
		tag:          rfid.NoTag,
	}

	if b.variant == VariantRFID {
		c.poller = rfid.NewPoller(b.transceiver)
	}

	return c
}
