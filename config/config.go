package config

import (
	"fmt"
)

const (
	MaxFieldSize = 1 << 16
	MinFieldSize = 1

	MaxInitialCapacity = 1 << 30
)

const (
	// DefaultStringSize is the fixed field width, in bytes, of an ASCII
	// string field.
	DefaultStringSize = 33

	// DefaultWStringSize is the fixed field width, in 16-bit units, of a
	// wide string field.
	DefaultWStringSize = 33

	DefaultInitialCapacity = 64
)

// Config defines the field-width and allocation options of a buffer.
type Config struct {
	StringSize      uint `mapstructure:"bitbuf-stringsize"`
	WStringSize     uint `mapstructure:"bitbuf-wstringsize"`
	InitialCapacity uint `mapstructure:"bitbuf-initialcapacity"`
}

func (cfg *Config) Validate() error {
	if cfg.StringSize < MinFieldSize {
		return fmt.Errorf("invalid `StringSize`; expected: >= %d, given: %d", MinFieldSize, cfg.StringSize)
	}

	if cfg.StringSize > MaxFieldSize {
		return fmt.Errorf("invalid `StringSize`; expected: <= %d, given: %d", MaxFieldSize, cfg.StringSize)
	}

	if cfg.WStringSize < MinFieldSize {
		return fmt.Errorf("invalid `WStringSize`; expected: >= %d, given: %d", MinFieldSize, cfg.WStringSize)
	}

	if cfg.WStringSize > MaxFieldSize {
		return fmt.Errorf("invalid `WStringSize`; expected: <= %d, given: %d", MaxFieldSize, cfg.WStringSize)
	}

	if cfg.InitialCapacity > MaxInitialCapacity {
		return fmt.Errorf("invalid `InitialCapacity`; expected: <= %d, given: %d", MaxInitialCapacity, cfg.InitialCapacity)
	}

	return nil
}

func DefaultConfig() *Config {
	return &Config{
		StringSize:      DefaultStringSize,
		WStringSize:     DefaultWStringSize,
		InitialCapacity: DefaultInitialCapacity,
	}
}
