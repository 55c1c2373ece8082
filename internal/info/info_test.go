package info

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jswenson/termctl/internal/core"

	"github.com/goccy/go-yaml"
)

func testReport() Report {
	return Report{
		Backend:     "ansi",
		Interactive: true,
		Columns:     120,
		Rows:        40,
		StdinTTY:    true,
		StdoutTTY:   true,
		StderrTTY:   false,
	}
}

func TestWriteText(t *testing.T) {
	p := core.NewHandle(core.ColorOff).Stdout()
	if err := write(p, testReport(), core.OutputText); err != nil {
		t.Fatalf("write error = %v", err)
	}

	got := string(p.Bytes())
	for _, want := range []string{
		"backend: ansi\n",
		"interactive: true\n",
		"columns: 120\n",
		"rows: 40\n",
		"stderr tty: false\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	p := core.NewHandle(core.ColorOff).Stdout()
	if err := write(p, testReport(), core.OutputJSON); err != nil {
		t.Fatalf("write error = %v", err)
	}

	var r Report
	if err := json.Unmarshal(p.Bytes(), &r); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if r != testReport() {
		t.Errorf("round-tripped report = %+v, want %+v", r, testReport())
	}
}

func TestWriteYAML(t *testing.T) {
	p := core.NewHandle(core.ColorOff).Stdout()
	if err := write(p, testReport(), core.OutputYAML); err != nil {
		t.Fatalf("write error = %v", err)
	}

	var r Report
	if err := yaml.Unmarshal(p.Bytes(), &r); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if r != testReport() {
		t.Errorf("round-tripped report = %+v, want %+v", r, testReport())
	}
}
