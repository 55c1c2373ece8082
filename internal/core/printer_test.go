package core

import (
	"os"
	"testing"
)

func TestPrinterSequences(t *testing.T) {
	tests := []struct {
		name   string
		isTerm bool
		color  Color
		want   string
	}{
		{"color on", false, ColorOn, "\x1b[1mx\x1b[0m"},
		{"color off", true, ColorOff, "x"},
		{"auto on terminal", true, ColorAuto, "\x1b[1mx\x1b[0m"},
		{"auto off pipe", false, ColorAuto, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrinter(os.Stdout, tt.isTerm, tt.color)
			p.Set(Bold)
			p.WriteString("x")
			p.Reset()
			if got := string(p.Bytes()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinterDiscard(t *testing.T) {
	p := newPrinter(os.Stdout, false, ColorOff)
	p.WriteString("buffered")
	p.Discard()
	if len(p.Bytes()) != 0 {
		t.Errorf("buffer = %q after Discard, want empty", p.Bytes())
	}
}
