// Package config handles quatcalc configuration loading and management.
package config

import "fmt"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Angle units accepted on the command line.
const (
	UnitRadians = "rad"
	UnitDegrees = "deg"
)

// Config holds all quatcalc settings.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Rotation RotationConfig `yaml:"rotation"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`    // "text" or "yaml"
	Precision int    `yaml:"precision"` // digits after the decimal point, -1 for shortest
}

// RotationConfig holds rotate command settings.
type RotationConfig struct {
	AngleUnit string `yaml:"angle_unit"` // "rad" or "deg"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    FormatText,
			Precision: -1,
		},
		Rotation: RotationConfig{
			AngleUnit: UnitRadians,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	switch c.Rotation.AngleUnit {
	case UnitRadians, UnitDegrees:
	default:
		return fmt.Errorf("unknown angle unit %q", c.Rotation.AngleUnit)
	}
	if c.Output.Precision < -1 || c.Output.Precision > 17 {
		return fmt.Errorf("precision %d out of range [-1, 17]", c.Output.Precision)
	}
	return nil
}
