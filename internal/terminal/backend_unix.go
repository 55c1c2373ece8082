//go:build unix

package terminal

import "os"

// selectBackend chooses the backend for this platform. Outside of Windows,
// escape sequences are the only control channel, so the ANSI backend is
// always used.
func selectBackend(ctx *Context, out *os.File, _ Options) driver {
	return newANSI(out, ctx)
}
