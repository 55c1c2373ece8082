//go:build windows

package terminal

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Console-management calls not exported by x/sys/windows.
var (
	kernel32                        = windows.NewLazySystemDLL("kernel32.dll")
	procFillConsoleOutputCharacterW = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute  = kernel32.NewProc("FillConsoleOutputAttribute")
	procSetConsoleScreenBufferSize  = kernel32.NewProc("SetConsoleScreenBufferSize")
	procSetConsoleWindowInfo        = kernel32.NewProc("SetConsoleWindowInfo")
)

// console implements driver using the Windows console API, for consoles
// without virtual terminal support. It must not assume escape sequences are
// interpreted at all.
type console struct {
	ctx *Context
}

func newConsole(ctx *Context) *console {
	return &console{ctx: ctx}
}

func (c *console) kind() BackendKind {
	return BackendConsole
}

func bufferInfo(h windows.Handle) (windows.ConsoleScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	err := windows.GetConsoleScreenBufferInfo(h, &info)
	return info, err
}

func (c *console) size() (uint16, uint16) {
	h, err := c.ctx.Console()
	if err != nil {
		return 0, 0
	}
	info, err := bufferInfo(h)
	if err != nil {
		return 0, 0
	}
	return uint16(info.Window.Right - info.Window.Left + 1),
		uint16(info.Window.Bottom - info.Window.Top + 1)
}

func (c *console) clear(ct ClearType) {
	h, err := c.ctx.Console()
	if err != nil {
		return
	}
	info, err := bufferInfo(h)
	if err != nil {
		return
	}

	width := uint32(info.Size.X)
	cursor := info.CursorPosition

	var from windows.Coord
	var cells uint32
	switch ct {
	case ClearAll:
		cells = width * uint32(info.Size.Y)
	case ClearFromCursorDown:
		from = cursor
		cells = width*uint32(info.Size.Y-cursor.Y-1) + width - uint32(cursor.X)
	case ClearFromCursorUp:
		cells = width*uint32(cursor.Y) + uint32(cursor.X) + 1
	case ClearCurrentLine:
		from = windows.Coord{Y: cursor.Y}
		cells = width
	case ClearUntilNewLine:
		from = cursor
		cells = width - uint32(cursor.X)
	default:
		return
	}

	fill(h, from, cells, info.Attributes)

	if ct == ClearAll {
		// Match the escape-sequence behavior of a full clear by homing
		// the cursor.
		windows.SetConsoleCursorPosition(h, windows.Coord{})
	}
}

func (c *console) scrollUp(n int16) {
	if n > 0 {
		c.moveWindow(-n)
	}
}

func (c *console) scrollDown(n int16) {
	if n > 0 {
		c.moveWindow(n)
	}
}

// moveWindow shifts the visible window by delta rows within the screen
// buffer, clamping at the buffer edges.
func (c *console) moveWindow(delta int16) {
	h, err := c.ctx.Console()
	if err != nil {
		return
	}
	info, err := bufferInfo(h)
	if err != nil {
		return
	}

	win := info.Window
	if delta < 0 && win.Top+delta < 0 {
		delta = -win.Top
	}
	if bottom := info.Size.Y - 1; delta > 0 && win.Bottom+delta > bottom {
		delta = bottom - win.Bottom
	}
	if delta == 0 {
		return
	}
	win.Top += delta
	win.Bottom += delta
	setWindow(h, &win)
}

func (c *console) setSize(width, height int16) {
	if width <= 0 || height <= 0 {
		return
	}
	h, err := c.ctx.Console()
	if err != nil {
		return
	}
	info, err := bufferInfo(h)
	if err != nil {
		return
	}

	// The screen buffer must never be smaller than the window, so grow it
	// first when enlarging. A buffer larger than the window is left alone:
	// the extra rows are scrollback.
	size := info.Size
	grow := false
	if size.X < info.Window.Left+width {
		size.X = info.Window.Left + width
		grow = true
	}
	if size.Y < info.Window.Top+height {
		size.Y = info.Window.Top + height
		grow = true
	}
	if grow {
		setBufferSize(h, size)
	}

	win := info.Window
	win.Right = win.Left + width - 1
	win.Bottom = win.Top + height - 1
	setWindow(h, &win)
}

// fill blanks count cells starting at pos, keeping the current attributes.
func fill(h windows.Handle, pos windows.Coord, count uint32, attrs uint16) {
	var written uint32
	procFillConsoleOutputCharacterW.Call(
		uintptr(h),
		uintptr(' '),
		uintptr(count),
		coordArg(pos),
		uintptr(unsafe.Pointer(&written)),
	)
	procFillConsoleOutputAttribute.Call(
		uintptr(h),
		uintptr(attrs),
		uintptr(count),
		coordArg(pos),
		uintptr(unsafe.Pointer(&written)),
	)
}

func setWindow(h windows.Handle, win *windows.SmallRect) {
	procSetConsoleWindowInfo.Call(uintptr(h), 1, uintptr(unsafe.Pointer(win)))
}

func setBufferSize(h windows.Handle, size windows.Coord) {
	procSetConsoleScreenBufferSize.Call(uintptr(h), coordArg(size))
}

// coordArg packs a Coord into the single machine word the console API
// expects it in.
func coordArg(c windows.Coord) uintptr {
	return uintptr(*(*uint32)(unsafe.Pointer(&c)))
}
