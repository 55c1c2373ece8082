//go:build unix

package terminal

import (
	"errors"
	"os"
	"testing"
)

func TestContextAcquiresOnce(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()

	var calls int
	ctx := newContext()
	ctx.openTTY = func() (*os.File, error) {
		calls++
		return w, nil
	}

	for range 3 {
		f, err := ctx.TTY()
		if err != nil {
			t.Fatalf("TTY() error = %v", err)
		}
		if f != w {
			t.Fatal("TTY() returned an unexpected file")
		}
	}
	if calls != 1 {
		t.Errorf("openTTY called %d times, want 1", calls)
	}
}

func TestContextCachesAcquireError(t *testing.T) {
	var calls int
	ctx := newContext()
	ctx.openTTY = func() (*os.File, error) {
		calls++
		return nil, os.ErrNotExist
	}

	for range 2 {
		if _, err := ctx.TTY(); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("TTY() error = %v, want %v", err, os.ErrNotExist)
		}
	}
	if calls != 1 {
		t.Errorf("openTTY called %d times, want 1", calls)
	}
}

func TestContextClose(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	defer r.Close()

	ctx := newContext()
	ctx.openTTY = func() (*os.File, error) { return w, nil }

	if _, err := ctx.TTY(); err != nil {
		t.Fatalf("TTY() error = %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	// The handle stays released for the rest of the session.
	if _, err := ctx.TTY(); err == nil {
		t.Error("TTY() after Close expected an error")
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestContextCloseWithoutAcquire(t *testing.T) {
	ctx := newContext()
	if err := ctx.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
