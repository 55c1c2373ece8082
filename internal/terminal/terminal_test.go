package terminal

import (
	"bytes"
	"testing"
)

func TestTerminalNoBackend(t *testing.T) {
	term := &Terminal{ctx: newContext()}

	// Every operation must be callable without a backend.
	term.Clear(ClearAll)
	term.ScrollUp(3)
	term.ScrollDown(3)
	term.SetSize(80, 24)

	if w, h := term.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = (%d, %d), want (0, 0)", w, h)
	}
	if kind := term.Kind(); kind != BackendNone {
		t.Errorf("Kind() = %s, want %s", kind, BackendNone)
	}
	if term.Interactive() {
		t.Error("Interactive() = true, want false")
	}
	if err := term.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestTerminalForwardsToBackend(t *testing.T) {
	var buf bytes.Buffer
	ctx := newContext()
	term := &Terminal{driver: newANSI(&buf, ctx), ctx: ctx}

	term.Clear(ClearCurrentLine)
	term.ScrollUp(2)
	term.ScrollDown(1)
	term.SetSize(120, 40)

	want := "\x1b[2K\x1b[2S\x1b[1T\x1b[8;40;120t"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if kind := term.Kind(); kind != BackendANSI {
		t.Errorf("Kind() = %s, want %s", kind, BackendANSI)
	}
}

func TestNewSelectsBackendOnce(t *testing.T) {
	term := New()
	defer term.Close()

	// The concrete backend depends on the environment, but the size query
	// must be stable without an intervening resize.
	w1, h1 := term.Size()
	w2, h2 := term.Size()
	if w1 != w2 || h1 != h2 {
		t.Errorf("Size() not stable: (%d, %d) then (%d, %d)", w1, h1, w2, h2)
	}
}

func TestClearTypeString(t *testing.T) {
	tests := []struct {
		ct   ClearType
		want string
	}{
		{ClearAll, "all"},
		{ClearFromCursorDown, "down"},
		{ClearFromCursorUp, "up"},
		{ClearCurrentLine, "line"},
		{ClearUntilNewLine, "newline"},
		{ClearType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("ClearType(%d).String() = %q, want %q", int(tt.ct), got, tt.want)
		}
	}
}

func TestParseClearType(t *testing.T) {
	for _, ct := range []ClearType{
		ClearAll,
		ClearFromCursorDown,
		ClearFromCursorUp,
		ClearCurrentLine,
		ClearUntilNewLine,
	} {
		got, err := ParseClearType(ct.String())
		if err != nil {
			t.Fatalf("ParseClearType(%q) error = %v", ct.String(), err)
		}
		if got != ct {
			t.Errorf("ParseClearType(%q) = %v, want %v", ct.String(), got, ct)
		}
	}

	if _, err := ParseClearType("everything"); err == nil {
		t.Error("ParseClearType(\"everything\") expected an error")
	}
}

func TestBackendKindString(t *testing.T) {
	tests := []struct {
		kind BackendKind
		want string
	}{
		{BackendNone, "none"},
		{BackendANSI, "ansi"},
		{BackendConsole, "console"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("BackendKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
