package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jswenson/termctl/internal/core"
)

func TestSet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(*Config) bool
	}{
		{"color", "auto", func(c *Config) bool { return c.Color == core.ColorAuto }},
		{"color", "on", func(c *Config) bool { return c.Color == core.ColorOn }},
		{"color", "off", func(c *Config) bool { return c.Color == core.ColorOff }},
		{"force-ansi", "true", func(c *Config) bool { return c.ForceANSI != nil && *c.ForceANSI }},
		{"force-ansi", "false", func(c *Config) bool { return c.ForceANSI != nil && !*c.ForceANSI }},
		{"output", "text", func(c *Config) bool { return c.Output == core.OutputText }},
		{"output", "json", func(c *Config) bool { return c.Output == core.OutputJSON }},
		{"output", "yaml", func(c *Config) bool { return c.Output == core.OutputYAML }},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			var cfg Config
			if err := cfg.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set(%q, %q) error = %v", tt.key, tt.value, err)
			}
			if !tt.check(&cfg) {
				t.Errorf("Set(%q, %q) did not apply", tt.key, tt.value)
			}
		})
	}
}

func TestSetInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"color", "sometimes"},
		{"force-ansi", "maybe"},
		{"output", "xml"},
		{"verbosity", "1"},
	}

	for _, tt := range tests {
		var cfg Config
		if err := cfg.Set(tt.key, tt.value); err == nil {
			t.Errorf("Set(%q, %q) expected an error", tt.key, tt.value)
		}
	}
}

func TestMergePrecedence(t *testing.T) {
	forced := true
	file := Config{
		Color:     core.ColorOff,
		ForceANSI: &forced,
		Output:    core.OutputYAML,
	}

	// Options already set stay set.
	cfg := Config{Color: core.ColorOn}
	cfg.Merge(&file)
	if cfg.Color != core.ColorOn {
		t.Errorf("Color = %v, want ColorOn", cfg.Color)
	}
	if cfg.ForceANSI == nil || !*cfg.ForceANSI {
		t.Error("ForceANSI was not merged from the file")
	}
	if cfg.Output != core.OutputYAML {
		t.Errorf("Output = %v, want OutputYAML", cfg.Output)
	}

	// Merging nil is a no-op.
	cfg.Merge(nil)
	if cfg.Color != core.ColorOn {
		t.Errorf("Color = %v after nil merge, want ColorOn", cfg.Color)
	}
}

func TestParseFile(t *testing.T) {
	contents := `
# termctl configuration
color = off

force-ansi = true
output = json
`
	cfg, err := parseFile("test", contents)
	if err != nil {
		t.Fatalf("parseFile error = %v", err)
	}
	if cfg.Color != core.ColorOff {
		t.Errorf("Color = %v, want ColorOff", cfg.Color)
	}
	if cfg.ForceANSI == nil || !*cfg.ForceANSI {
		t.Error("ForceANSI = nil or false, want true")
	}
	if cfg.Output != core.OutputJSON {
		t.Errorf("Output = %v, want OutputJSON", cfg.Output)
	}
}

func TestParseFileErrors(t *testing.T) {
	t.Run("missing separator", func(t *testing.T) {
		_, err := parseFile("test", "color off\n")
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "test:1") {
			t.Errorf("error %q does not mention the line number", err.Error())
		}
	})

	t.Run("unknown key reports line", func(t *testing.T) {
		_, err := parseFile("test", "color = on\nverbose = true\n")
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "test:2") {
			t.Errorf("error %q does not mention the line number", err.Error())
		}
	})
}

func TestGetFile(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config")
		os.WriteFile(path, []byte("output = yaml\n"), 0o644)

		cfg, err := GetFile(path)
		if err != nil {
			t.Fatalf("GetFile error = %v", err)
		}
		if cfg == nil || cfg.Output != core.OutputYAML {
			t.Errorf("Output not parsed from %s", path)
		}
	})

	t.Run("missing explicit path", func(t *testing.T) {
		if _, err := GetFile(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected an error for a missing explicit path")
		}
	})
}
