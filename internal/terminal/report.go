package terminal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"
)

// sizeViaReport determines the terminal size by parking the cursor at the
// bottom-right corner and asking for a cursor position report. It requires a
// terminal on both stdin and stdout, and raw mode while the response is
// read. It is the last-resort size query.
func sizeViaReport() (uint16, uint16) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0, 0
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return 0, 0
	}
	defer term.Restore(fd, saved)

	// Save the cursor, park it at the bottom-right corner, request a
	// cursor position report (DSR), then restore the cursor.
	fmt.Fprint(os.Stdout, "\x1b7"+csi+"9999;9999H"+csi+"6n"+"\x1b8")

	return parseReport(readReport(os.Stdin, time.Second))
}

// readReport reads from r until a cursor position report terminator is seen,
// or the timeout elapses. Must be called before any other goroutine is
// reading stdin.
func readReport(r io.Reader, timeout time.Duration) []byte {
	type readResult struct {
		resp []byte
		err  error
	}
	ch := make(chan readResult, 1)
	go func() {
		var resp []byte
		var buf [32]byte
		for {
			n, err := r.Read(buf[:])
			if n > 0 {
				resp = append(resp, buf[:n]...)
				if bytes.ContainsRune(resp, 'R') {
					ch <- readResult{resp: resp}
					return
				}
			}
			if err != nil {
				ch <- readResult{err: err}
				return
			}
		}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil
		}
		return res.resp
	case <-time.After(timeout):
		return nil
	}
}

// parseReport parses a cursor position report of the form ESC [ rows ; cols R
// into (cols, rows). Anything malformed parses as (0, 0).
func parseReport(resp []byte) (uint16, uint16) {
	start := bytes.IndexByte(resp, '[')
	semi := bytes.IndexByte(resp, ';')
	end := bytes.IndexByte(resp, 'R')
	if start < 0 || semi < 0 || end < 0 || start >= semi || semi >= end {
		return 0, 0
	}
	rows, err := strconv.ParseUint(string(resp[start+1:semi]), 10, 16)
	if err != nil {
		return 0, 0
	}
	cols, err := strconv.ParseUint(string(resp[semi+1:end]), 10, 16)
	if err != nil {
		return 0, 0
	}
	return uint16(cols), uint16(rows)
}
