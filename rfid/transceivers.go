package rfid

import "sync"

// Silent is a Transceiver that never sees a tag. It stands in for a missing
// reader.
type Silent struct{}

// WakeAndClassify reports an empty field.
func (Silent) WakeAndClassify() (byte, error) {
	return 0x00, nil
}

// ReadIdentifier returns NoTag.
func (Silent) ReadIdentifier() (byte, error) {
	return byte(NoTag), nil
}

// ScriptedTransceiver plays back one tag per wake. NoTag entries are reported
// as an empty field. Once the script runs out the field stays empty.
type ScriptedTransceiver struct {
	lock    sync.Mutex
	script  []Tag
	current Tag
	wakes   int
}

// NewScriptedTransceiver creates a transceiver that will present tags in
// order.
func NewScriptedTransceiver(tags ...Tag) *ScriptedTransceiver {
	return &ScriptedTransceiver{script: tags}
}

// Present queues tag for the next wake.
func (s *ScriptedTransceiver) Present(tag Tag) {
	s.lock.Lock()
	s.script = append(s.script, tag)
	s.lock.Unlock()
}

// WakeAndClassify pops the next tag of the script.
func (s *ScriptedTransceiver) WakeAndClassify() (byte, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.wakes++
	s.current = NoTag

	if len(s.script) > 0 {
		s.current = s.script[0]
		s.script = s.script[1:]
	}

	if s.current == NoTag {
		return 0x00, nil
	}

	return ClassSingleTag, nil
}

// ReadIdentifier returns the tag found by the last wake.
func (s *ScriptedTransceiver) ReadIdentifier() (byte, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return byte(s.current), nil
}

// Wakes returns how many times the field was woken.
func (s *ScriptedTransceiver) Wakes() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.wakes
}

// Field is a Transceiver with one tag held in the field until it is changed.
type Field struct {
	lock  sync.Mutex
	tag   Tag
	wakes int
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{}
}

// Hold puts tag in the field. NoTag empties it.
func (f *Field) Hold(tag Tag) {
	f.lock.Lock()
	f.tag = tag
	f.lock.Unlock()
}

// WakeAndClassify reports a single tag if one is held.
func (f *Field) WakeAndClassify() (byte, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.wakes++

	if f.tag == NoTag {
		return 0x00, nil
	}

	return ClassSingleTag, nil
}

// ReadIdentifier returns the held tag.
func (f *Field) ReadIdentifier() (byte, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	return byte(f.tag), nil
}

// Wakes returns how many times the field was woken.
func (f *Field) Wakes() int {
	f.lock.Lock()
	defer f.lock.Unlock()

	return f.wakes
}

var (
	_ Transceiver = Silent{}
	_ Transceiver = (*ScriptedTransceiver)(nil)
	_ Transceiver = (*Field)(nil)
)
