// Package config loads the PakSafe controller configuration from a YAML file,
// optional .env files and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/paksafe/paksafe/gpio"
	"github.com/paksafe/paksafe/locker"
	"github.com/paksafe/paksafe/rfid"
	"github.com/paksafe/paksafe/timing"
)

// Environment keys that override the file.
const (
	EnvVariant      = "PAKSAFE_VARIANT"
	EnvTickMs       = "PAKSAFE_TICK_MS"
	EnvPrimaryTag   = "PAKSAFE_PRIMARY_TAG"
	EnvSecondaryTag = "PAKSAFE_SECONDARY_TAG"
)

var (
	// ErrUnknownVariant is returned for a variant other than base or rfid.
	ErrUnknownVariant = errors.New("config: unknown variant")

	// ErrInvalidBit is returned for a sensor bit outside the input byte or
	// shared by two sensors.
	ErrInvalidBit = errors.New("config: invalid sensor bit")

	// ErrInvalidCredentials is returned when a tag credential is NoTag or
	// both credentials are equal.
	ErrInvalidCredentials = errors.New("config: invalid credentials")

	// ErrTooManyPins is returned when more than eight pins form a port.
	ErrTooManyPins = errors.New("config: a port has at most 8 pins")
)

// Config is the controller configuration.
type Config struct {
	Variant      string      `yaml:"variant"`
	TickPeriodMs uint32      `yaml:"tick_period_ms"`
	Credentials  Credentials `yaml:"credentials"`
	Input        Input       `yaml:"input"`
	Pins         Pins        `yaml:"pins"`
}

// Credentials are the accepted tag identifiers of the RFID variant.
type Credentials struct {
	Primary   uint8 `yaml:"primary"`
	Secondary uint8 `yaml:"secondary"`
}

// Validate returns ErrInvalidCredentials if a credential is NoTag or both
// credentials are the same tag.
func (c Credentials) Validate() error {
	if rfid.Tag(c.Primary) == rfid.NoTag ||
		rfid.Tag(c.Secondary) == rfid.NoTag ||
		c.Primary == c.Secondary {
		return fmt.Errorf("%w: primary 0x%02X, secondary 0x%02X",
			ErrInvalidCredentials, c.Primary, c.Secondary)
	}

	return nil
}

// Input describes the wiring of the input port.
type Input struct {
	ActiveLow   bool `yaml:"active_low"`
	CardBit     uint `yaml:"card_bit"`
	PresenceBit uint `yaml:"presence_bit"`
	KeypadBit   uint `yaml:"keypad_bit"`
}

// Pins name the GPIO lines of each port, bit 0 first. An empty name leaves
// the bit unconnected.
type Pins struct {
	Input  []string `yaml:"input"`
	Output []string `yaml:"output"`
}

// Default returns the factory configuration of the base variant.
func Default() Config {
	return Config{
		Variant: locker.VariantBase.String(),
		Credentials: Credentials{
			Primary:   uint8(locker.DefaultCredentials.Primary),
			Secondary: uint8(locker.DefaultCredentials.Secondary),
		},
		Input: Input{
			ActiveLow:   true,
			CardBit:     gpio.DefaultSensorMap.Card,
			PresenceBit: gpio.DefaultSensorMap.Presence,
			KeypadBit:   gpio.DefaultSensorMap.Keypad,
		},
	}
}

// Load builds a configuration from the defaults, the YAML file at path and
// the environment. An empty path skips the file. Values in envFiles are used
// for keys the process environment does not set. A tick period left at zero
// takes the default of the variant.
func Load(path string, envFiles ...string) (Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config: read %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	dotenv := map[string]string{}
	if len(envFiles) > 0 {
		var err error

		dotenv, err = godotenv.Read(envFiles...)
		if err != nil {
			return c, fmt.Errorf("config: read env files: %w", err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}

		v, ok := dotenv[key]

		return v, ok
	}

	if err := c.applyEnv(lookup); err != nil {
		return c, err
	}

	c.fillPeriod()

	return c, c.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvVariant); ok {
		c.Variant = v
	}

	if v, ok := lookup(EnvTickMs); ok {
		ms, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTickMs, err)
		}

		c.TickPeriodMs = uint32(ms)
	}

	tags := []struct {
		key string
		dst *uint8
	}{
		{EnvPrimaryTag, &c.Credentials.Primary},
		{EnvSecondaryTag, &c.Credentials.Secondary},
	}

	for _, tag := range tags {
		v, ok := lookup(tag.key)
		if !ok {
			continue
		}

		id, err := strconv.ParseUint(v, 0, 8)
		if err != nil {
			return fmt.Errorf("config: %s: %w", tag.key, err)
		}

		*tag.dst = uint8(id)
	}

	return nil
}

func (c *Config) fillPeriod() {
	if c.TickPeriodMs != 0 {
		return
	}

	c.TickPeriodMs = timing.DefaultBasePeriodMs

	if v, err := locker.ParseVariant(c.Variant); err == nil && v == locker.VariantRFID {
		c.TickPeriodMs = timing.DefaultRFIDPeriodMs
	}
}

// Validate checks that the configuration can drive a controller.
func (c Config) Validate() error {
	if _, err := locker.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, c.Variant)
	}

	if c.TickPeriodMs == 0 {
		return fmt.Errorf("config: tick_period_ms: %w", timing.ErrZeroPeriod)
	}

	if err := c.SensorMap().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBit, err)
	}

	if err := c.Credentials.Validate(); err != nil {
		return err
	}

	if len(c.Pins.Input) > 8 || len(c.Pins.Output) > 8 {
		return ErrTooManyPins
	}

	return nil
}

// LockerVariant returns the parsed variant. It assumes a validated config.
func (c Config) LockerVariant() locker.Variant {
	v, _ := locker.ParseVariant(c.Variant)
	return v
}

// LockerCredentials returns the credentials as tag identifiers.
func (c Config) LockerCredentials() locker.Credentials {
	return locker.Credentials{
		Primary:   rfid.Tag(c.Credentials.Primary),
		Secondary: rfid.Tag(c.Credentials.Secondary),
	}
}

// SensorMap returns the input bit assignment.
func (c Config) SensorMap() gpio.SensorMap {
	return gpio.SensorMap{
		Card:     c.Input.CardBit,
		Presence: c.Input.PresenceBit,
		Keypad:   c.Input.KeypadBit,
	}
}

// Decoder returns the input decoder for the configured wiring.
func (c Config) Decoder() gpio.Decoder {
	return gpio.Decoder{Map: c.SensorMap(), ActiveLow: c.Input.ActiveLow}
}

// Marshal returns the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
