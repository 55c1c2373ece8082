package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jswenson/termctl/internal/config"
	"github.com/jswenson/termctl/internal/core"
	"github.com/jswenson/termctl/internal/terminal"
)

// Dims represents the requested width and height for a resize.
type Dims struct {
	Width  int16
	Height int16
}

// App represents the full configuration for a termctl invocation.
type App struct {
	Cfg config.Config

	BuildInfo  bool
	Clear      *terminal.ClearType
	ConfigPath string
	Help       bool
	Info       bool
	Resize     *Dims
	ScrollDown *int16
	ScrollUp   *int16
	Size       bool
	Version    bool
}

// HasOperation reports whether any terminal operation was requested.
func (a *App) HasOperation() bool {
	return a.Clear != nil || a.ScrollUp != nil || a.ScrollDown != nil ||
		a.Resize != nil || a.Size || a.Info
}

func (a *App) PrintHelp(p *core.Printer) {
	printHelp(a.CLI(), p)
}

func (a *App) CLI() *CLI {
	return &CLI{
		Description: "termctl controls the terminal attached to the current process",
		ArgFn: func(s string) error {
			return fmt.Errorf("unexpected argument: %q", s)
		},
		ExclusiveFlags: [][]string{
			{"info", "size"},
		},
		Flags: []Flag{
			{
				Long:        "buildinfo",
				Description: "Print the build information",
				IsHidden:    true,
				IsSet:       func() bool { return a.BuildInfo },
				Fn: func(string) error {
					a.BuildInfo = true
					return nil
				},
			},
			{
				Long:        "clear",
				Short:       "c",
				Args:        "REGION",
				Description: "Erase a region of the terminal",
				Values:      []string{"all", "down", "up", "line", "newline"},
				IsSet:       func() bool { return a.Clear != nil },
				Fn: func(value string) error {
					ct, err := terminal.ParseClearType(value)
					if err != nil {
						return err
					}
					a.Clear = &ct
					return nil
				},
			},
			{
				Long:        "color",
				Args:        "WHEN",
				Description: "When to use color in output",
				Default:     "auto",
				Values:      []string{"auto", "off", "on"},
				IsSet:       func() bool { return a.Cfg.Color != core.ColorUnknown },
				Fn: func(value string) error {
					return a.Cfg.Set("color", value)
				},
			},
			stringFlag(&a.ConfigPath, "config", "", "PATH", "Path to the config file"),
			{
				Long:        "force-ansi",
				Description: "Always emit escape sequences, skipping the native console backend",
				IsSet:       func() bool { return a.Cfg.ForceANSI != nil },
				Fn: func(string) error {
					return a.Cfg.Set("force-ansi", "true")
				},
			},
			boolFlag(&a.Help, "help", "h", "Print help"),
			boolFlag(&a.Info, "info", "i", "Print a report describing the attached terminal"),
			{
				Long:        "output",
				Short:       "o",
				Args:        "FORMAT",
				Description: "Output format for the terminal report",
				Default:     "text",
				Values:      []string{"text", "json", "yaml"},
				IsSet:       func() bool { return a.Cfg.Output != core.OutputUnknown },
				Fn: func(value string) error {
					return a.Cfg.Set("output", value)
				},
			},
			{
				Long:        "scroll-down",
				Args:        "LINES",
				Description: "Scroll the terminal window down",
				IsSet:       func() bool { return a.ScrollDown != nil },
				Fn: func(value string) error {
					n, err := parseLines(value)
					if err != nil {
						return err
					}
					a.ScrollDown = &n
					return nil
				},
			},
			{
				Long:        "scroll-up",
				Args:        "LINES",
				Description: "Scroll the terminal window up",
				IsSet:       func() bool { return a.ScrollUp != nil },
				Fn: func(value string) error {
					n, err := parseLines(value)
					if err != nil {
						return err
					}
					a.ScrollUp = &n
					return nil
				},
			},
			{
				Long:        "set-size",
				Args:        "WIDTHxHEIGHT",
				Description: "Request that the terminal resize itself",
				IsSet:       func() bool { return a.Resize != nil },
				Fn: func(value string) error {
					d, err := parseDims(value)
					if err != nil {
						return err
					}
					a.Resize = d
					return nil
				},
			},
			boolFlag(&a.Size, "size", "s", "Print the terminal dimensions as 'COLS ROWS'"),
			boolFlag(&a.Version, "version", "V", "Print version"),
		},
	}
}

func parseLines(value string) (int16, error) {
	n, err := strconv.ParseInt(value, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid line count '%s'", value)
	}
	return int16(n), nil
}

func parseDims(value string) (*Dims, error) {
	ws, hs, ok := strings.Cut(value, "x")
	if !ok {
		return nil, fmt.Errorf("invalid size '%s': expected WIDTHxHEIGHT", value)
	}
	w, err := strconv.ParseInt(ws, 10, 16)
	if err != nil || w <= 0 {
		return nil, fmt.Errorf("invalid width '%s'", ws)
	}
	h, err := strconv.ParseInt(hs, 10, 16)
	if err != nil || h <= 0 {
		return nil, fmt.Errorf("invalid height '%s'", hs)
	}
	return &Dims{Width: int16(w), Height: int16(h)}, nil
}
