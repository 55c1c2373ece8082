//go:build unix

package terminal

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// querySize reports the dimensions of the terminal attached to out. It
// prefers the TIOCGWINSZ ioctl on the output stream, then the controlling
// terminal, then a cursor position report, degrading to (0, 0).
func querySize(out io.Writer, ctx *Context) (uint16, uint16) {
	if f, ok := out.(*os.File); ok {
		if ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
			return ws.Col, ws.Row
		}
	}
	if tty, err := ctx.TTY(); err == nil {
		if ws, err := unix.IoctlGetWinsize(int(tty.Fd()), unix.TIOCGWINSZ); err == nil {
			return ws.Col, ws.Row
		}
	}
	return sizeViaReport()
}
