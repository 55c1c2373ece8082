//go:build windows

package terminal

import (
	"os"

	"golang.org/x/sys/windows"
)

// selectBackend chooses the backend for this process's console. Consoles
// that accept virtual terminal processing are driven with escape sequences;
// legacy consoles fall back to the console API. Without any console handle
// there is no backend to build.
func selectBackend(ctx *Context, out *os.File, opts Options) driver {
	h, err := ctx.Console()
	if err != nil {
		if opts.ForceANSI {
			return newANSI(out, ctx)
		}
		return nil
	}
	if opts.ForceANSI || enableVirtualTerminal(h) == nil {
		return newANSI(out, ctx)
	}
	return newConsole(ctx)
}

// enableVirtualTerminal probes for ANSI support by turning on virtual
// terminal processing for the console handle.
// https://docs.microsoft.com/en-us/windows/console/console-virtual-terminal-sequences
func enableVirtualTerminal(h windows.Handle) error {
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
