//go:build windows

package terminal

import "golang.org/x/sys/windows"

// Context caches platform resources that are expensive to acquire. On
// Windows that is the console output handle, shared by the size query, the
// capability probe and the native backend. A Context is owned by exactly one
// Terminal and, like the Terminal itself, provides no internal locking.
type Context struct {
	handle    windows.Handle
	handleErr error
	acquired  bool
}

func newContext() *Context {
	return &Context{}
}

// Console returns the console output handle, resolving it on first use. The
// lookup happens at most once per Context; its result, error included, is
// cached.
func (c *Context) Console() (windows.Handle, error) {
	if !c.acquired {
		c.acquired = true
		c.handle, c.handleErr = windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
		if c.handleErr == nil && c.handle == windows.InvalidHandle {
			c.handleErr = windows.ERROR_INVALID_HANDLE
		}
	}
	return c.handle, c.handleErr
}

// Close releases the Context. Standard handles are owned by the process and
// must not be closed here.
func (c *Context) Close() error {
	return nil
}
