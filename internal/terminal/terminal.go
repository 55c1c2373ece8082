// Package terminal provides cross-platform control over the terminal
// attached to the current process: clearing regions of the screen, querying
// and setting its dimensions, and scrolling its contents.
//
// Two implementations back the public API: one that emits ANSI escape
// sequences, and one that drives the Windows console API directly for
// consoles without virtual terminal support. The backend is selected exactly
// once, at construction. When no backend can be built at all, the Terminal
// remains usable: mutating operations become no-ops and size queries report
// (0, 0).
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ClearType represents the region of the terminal buffer that a clear
// operation erases.
type ClearType int

const (
	// ClearAll erases every cell in the terminal.
	ClearAll ClearType = iota
	// ClearFromCursorDown erases from the cursor position downwards.
	ClearFromCursorDown
	// ClearFromCursorUp erases from the cursor position upwards.
	ClearFromCursorUp
	// ClearCurrentLine erases the line the cursor is on.
	ClearCurrentLine
	// ClearUntilNewLine erases from the cursor to the end of the line.
	ClearUntilNewLine
)

func (ct ClearType) String() string {
	switch ct {
	case ClearAll:
		return "all"
	case ClearFromCursorDown:
		return "down"
	case ClearFromCursorUp:
		return "up"
	case ClearCurrentLine:
		return "line"
	case ClearUntilNewLine:
		return "newline"
	default:
		return "unknown"
	}
}

// ParseClearType parses the string representation of a clear region.
func ParseClearType(s string) (ClearType, error) {
	switch s {
	case "all":
		return ClearAll, nil
	case "down":
		return ClearFromCursorDown, nil
	case "up":
		return ClearFromCursorUp, nil
	case "line":
		return ClearCurrentLine, nil
	case "newline":
		return ClearUntilNewLine, nil
	default:
		return 0, fmt.Errorf("invalid clear region '%s'", s)
	}
}

// BackendKind identifies which backend a Terminal selected at construction.
type BackendKind int

const (
	// BackendNone indicates that no usable backend was found.
	BackendNone BackendKind = iota
	// BackendANSI indicates the escape-sequence backend.
	BackendANSI
	// BackendConsole indicates the Windows console API backend.
	BackendConsole
)

func (k BackendKind) String() string {
	switch k {
	case BackendANSI:
		return "ansi"
	case BackendConsole:
		return "console"
	default:
		return "none"
	}
}

// driver is the operation set every backend implements. It is unexported so
// the variant set stays closed: the selector returns exactly one of the
// implementations in this package, or nil.
type driver interface {
	clear(ct ClearType)
	size() (width, height uint16)
	scrollUp(n int16)
	scrollDown(n int16)
	setSize(width, height int16)
	kind() BackendKind
}

// Options configures Terminal construction.
type Options struct {
	// ForceANSI skips the native console backend on Windows and always
	// emits escape sequences.
	ForceANSI bool

	// Output is the stream escape sequences are written to. It defaults
	// to os.Stdout.
	Output *os.File
}

// Terminal controls the terminal attached to the process.
//
// A Terminal is not safe for concurrent use: every operation is a direct,
// blocking call into the selected backend, and callers needing concurrent
// access must serialize it themselves.
type Terminal struct {
	driver      driver
	ctx         *Context
	interactive bool
}

// New returns a Terminal using the default Options.
func New() *Terminal {
	return NewWithOptions(Options{})
}

// NewWithOptions returns a Terminal, running the backend selection exactly
// once.
func NewWithOptions(opts Options) *Terminal {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	ctx := newContext()
	d := selectBackend(ctx, out, opts)
	return &Terminal{
		driver:      d,
		ctx:         ctx,
		interactive: d != nil && term.IsTerminal(int(out.Fd())),
	}
}

// Clear erases the region of the terminal buffer described by ct. It is a
// no-op when no backend is present.
func (t *Terminal) Clear(ct ClearType) {
	if t.driver != nil {
		t.driver.clear(ct)
	}
}

// Size returns the terminal dimensions as (columns, rows), or (0, 0) if they
// cannot be determined.
func (t *Terminal) Size() (width, height uint16) {
	if t.driver != nil {
		return t.driver.size()
	}
	return 0, 0
}

// ScrollUp scrolls the visible window up by n lines. Values of n <= 0 are a
// no-op, as is a missing backend.
func (t *Terminal) ScrollUp(n int16) {
	if t.driver != nil {
		t.driver.scrollUp(n)
	}
}

// ScrollDown scrolls the visible window down by n lines. Values of n <= 0
// are a no-op, as is a missing backend.
func (t *Terminal) ScrollDown(n int16) {
	if t.driver != nil {
		t.driver.scrollDown(n)
	}
}

// SetSize requests that the terminal resize to width columns by height rows.
// Many terminal emulators silently clamp small values to a minimum; that is
// accepted as platform behavior and never surfaced as an error.
func (t *Terminal) SetSize(width, height int16) {
	if t.driver != nil {
		t.driver.setSize(width, height)
	}
}

// Kind reports which backend was selected at construction.
func (t *Terminal) Kind() BackendKind {
	if t.driver == nil {
		return BackendNone
	}
	return t.driver.kind()
}

// Interactive reports whether a backend was selected and the output stream
// is attached to a terminal. It lets callers distinguish "no terminal" from
// a degraded query result such as a (0, 0) size.
func (t *Terminal) Interactive() bool {
	return t.interactive
}

// Close releases any platform resources acquired during the session. The
// Terminal must not be used afterwards.
func (t *Terminal) Close() error {
	return t.ctx.Close()
}
