// Package config implements the optional termctl config file: flat
// 'key = value' lines with '#' comments, merged underneath any CLI flags.
package config

import (
	"fmt"
	"strconv"

	"github.com/jswenson/termctl/internal/core"
)

// Config represents the options shared by the CLI and the config file.
type Config struct {
	Color     core.Color
	ForceANSI *bool
	Output    core.Output
}

// Set parses and applies the provided key/value pair to the Config.
func (c *Config) Set(key, value string) error {
	switch key {
	case "color":
		return c.setColor(value)
	case "force-ansi":
		return c.setForceANSI(value)
	case "output":
		return c.setOutput(value)
	default:
		return fmt.Errorf("invalid option '%s'", key)
	}
}

func (c *Config) setColor(value string) error {
	switch value {
	case "auto":
		c.Color = core.ColorAuto
	case "off":
		c.Color = core.ColorOff
	case "on":
		c.Color = core.ColorOn
	default:
		return fmt.Errorf("invalid color value '%s'", value)
	}
	return nil
}

func (c *Config) setForceANSI(value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid force-ansi value '%s'", value)
	}
	c.ForceANSI = &b
	return nil
}

func (c *Config) setOutput(value string) error {
	switch value {
	case "text":
		c.Output = core.OutputText
	case "json":
		c.Output = core.OutputJSON
	case "yaml":
		c.Output = core.OutputYAML
	default:
		return fmt.Errorf("invalid output value '%s'", value)
	}
	return nil
}

// Merge fills in any unset options in c from other. Options already set on c
// always win.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if c.Color == core.ColorUnknown {
		c.Color = other.Color
	}
	if c.ForceANSI == nil {
		c.ForceANSI = other.ForceANSI
	}
	if c.Output == core.OutputUnknown {
		c.Output = other.Output
	}
}
