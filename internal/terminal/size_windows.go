//go:build windows

package terminal

import "io"

// querySize reports the dimensions of the console window. Windows has no
// reliable sequence-based size query, so escape-sequence terminals read the
// screen buffer info as well.
func querySize(_ io.Writer, ctx *Context) (uint16, uint16) {
	h, err := ctx.Console()
	if err != nil {
		return 0, 0
	}
	info, err := bufferInfo(h)
	if err != nil {
		return sizeViaReport()
	}
	return uint16(info.Window.Right - info.Window.Left + 1),
		uint16(info.Window.Bottom - info.Window.Top + 1)
}
