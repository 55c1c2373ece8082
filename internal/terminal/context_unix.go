//go:build unix

package terminal

import "os"

// Context caches platform resources that are expensive to acquire. On unix
// that is the controlling terminal, used for size queries when the output
// stream is redirected. A Context is owned by exactly one Terminal and, like
// the Terminal itself, provides no internal locking.
type Context struct {
	openTTY func() (*os.File, error)

	tty      *os.File
	ttyErr   error
	acquired bool
}

func newContext() *Context {
	return &Context{openTTY: openControllingTTY}
}

func openControllingTTY() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// TTY returns the controlling terminal, opening it on first use. The open is
// attempted at most once per Context; its result, error included, is cached.
func (c *Context) TTY() (*os.File, error) {
	if !c.acquired {
		c.acquired = true
		c.tty, c.ttyErr = c.openTTY()
	}
	return c.tty, c.ttyErr
}

// Close releases the controlling terminal if it was acquired.
func (c *Context) Close() error {
	if c.tty == nil {
		return nil
	}
	tty := c.tty
	c.tty = nil
	c.ttyErr = os.ErrClosed
	return tty.Close()
}
