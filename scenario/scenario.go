// Package scenario replays scripted sensor and tag inputs through a complete
// controller on simulated hardware and checks the outputs tick by tick.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paksafe/paksafe/config"
	"github.com/paksafe/paksafe/locker"
	"github.com/paksafe/paksafe/rfid"
	"github.com/paksafe/paksafe/timing"
)

// ErrExpectation is returned when a tick does not match its expectation.
var ErrExpectation = errors.New("scenario: expectation failed")

// Latch positions an expectation can name.
const (
	LatchOpen   = "open"
	LatchClosed = "closed"
)

// Scenario is a scripted run of the controller.
type Scenario struct {
	Name         string              `yaml:"name"`
	Variant      string              `yaml:"variant"`
	TickPeriodMs uint32              `yaml:"tick_period_ms"`
	Credentials  *config.Credentials `yaml:"credentials"`
	Steps        []Step              `yaml:"steps"`
}

// Step holds the inputs for one or more ticks.
type Step struct {
	Card     bool    `yaml:"card"`
	Presence bool    `yaml:"presence"`
	Keypad   bool    `yaml:"keypad"`
	Tag      uint8   `yaml:"tag"`
	Repeat   int     `yaml:"repeat"`
	Expect   *Expect `yaml:"expect"`
}

// Ticks returns how many ticks the step lasts.
func (s Step) Ticks() int {
	if s.Repeat < 1 {
		return 1
	}

	return s.Repeat
}

// Expect lists what must hold after the last tick of a step. Empty fields are
// not checked.
type Expect struct {
	State        string `yaml:"state"`
	Latch        string `yaml:"latch"`
	Display      string `yaml:"display"`
	PackageCount *uint  `yaml:"package_count"`
	Port         *uint8 `yaml:"port"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	s := new(Scenario)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks the scenario before it runs.
func (s *Scenario) Validate() error {
	if _, err := locker.ParseVariant(s.Variant); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	if s.Credentials != nil {
		if err := s.Credentials.Validate(); err != nil {
			return fmt.Errorf("scenario: %w", err)
		}
	}

	if len(s.Steps) == 0 {
		return errors.New("scenario: no steps")
	}

	for i, step := range s.Steps {
		if step.Repeat < 0 {
			return fmt.Errorf("scenario: step %d: negative repeat", i+1)
		}

		if step.Expect == nil {
			continue
		}

		if step.Expect.State != "" {
			if _, err := locker.ParseState(step.Expect.State); err != nil {
				return fmt.Errorf("scenario: step %d: %w", i+1, err)
			}
		}

		switch step.Expect.Latch {
		case "", LatchOpen, LatchClosed:
		default:
			return fmt.Errorf("scenario: step %d: latch must be %q or %q",
				i+1, LatchOpen, LatchClosed)
		}
	}

	return nil
}

// LockerVariant returns the variant the scenario runs on.
func (s *Scenario) LockerVariant() locker.Variant {
	v, _ := locker.ParseVariant(s.Variant)
	return v
}

// Period returns the tick period, falling back to the default of the
// variant.
func (s *Scenario) Period() uint32 {
	if s.TickPeriodMs != 0 {
		return s.TickPeriodMs
	}

	if s.LockerVariant() == locker.VariantRFID {
		return timing.DefaultRFIDPeriodMs
	}

	return timing.DefaultBasePeriodMs
}

// LockerCredentials returns the scenario credentials or the defaults.
func (s *Scenario) LockerCredentials() locker.Credentials {
	if s.Credentials == nil {
		return locker.DefaultCredentials
	}

	return locker.Credentials{
		Primary:   rfid.Tag(s.Credentials.Primary),
		Secondary: rfid.Tag(s.Credentials.Secondary),
	}
}
