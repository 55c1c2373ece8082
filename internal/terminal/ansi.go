package terminal

import (
	"fmt"
	"io"
)

// csi prefixes every control sequence emitted by the ANSI backend.
const csi = "\x1b["

// ansi implements driver by writing ANSI escape sequences to the output
// stream. It is available on every platform; on Windows it is selected when
// the console accepts virtual terminal processing.
type ansi struct {
	out io.Writer
	ctx *Context
}

func newANSI(out io.Writer, ctx *Context) *ansi {
	return &ansi{out: out, ctx: ctx}
}

func (a *ansi) kind() BackendKind {
	return BackendANSI
}

func (a *ansi) clear(ct ClearType) {
	switch ct {
	case ClearAll:
		io.WriteString(a.out, csi+"2J")
	case ClearFromCursorDown:
		io.WriteString(a.out, csi+"J")
	case ClearFromCursorUp:
		io.WriteString(a.out, csi+"1J")
	case ClearCurrentLine:
		io.WriteString(a.out, csi+"2K")
	case ClearUntilNewLine:
		io.WriteString(a.out, csi+"K")
	}
}

func (a *ansi) size() (uint16, uint16) {
	return querySize(a.out, a.ctx)
}

func (a *ansi) scrollUp(n int16) {
	if n > 0 {
		fmt.Fprintf(a.out, csi+"%dS", n)
	}
}

func (a *ansi) scrollDown(n int16) {
	if n > 0 {
		fmt.Fprintf(a.out, csi+"%dT", n)
	}
}

func (a *ansi) setSize(width, height int16) {
	if width > 0 && height > 0 {
		fmt.Fprintf(a.out, csi+"8;%d;%dt", height, width)
	}
}
