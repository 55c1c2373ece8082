// Package info renders a report describing the terminal attached to the
// current process.
package info

import (
	"encoding/json"
	"strconv"

	"github.com/jswenson/termctl/internal/core"
	"github.com/jswenson/termctl/internal/terminal"

	"github.com/goccy/go-yaml"
)

// Report describes the terminal attached to the current process.
type Report struct {
	Backend     string `json:"backend" yaml:"backend"`
	Interactive bool   `json:"interactive" yaml:"interactive"`
	Columns     uint16 `json:"columns" yaml:"columns"`
	Rows        uint16 `json:"rows" yaml:"rows"`
	StdinTTY    bool   `json:"stdin_tty" yaml:"stdin_tty"`
	StdoutTTY   bool   `json:"stdout_tty" yaml:"stdout_tty"`
	StderrTTY   bool   `json:"stderr_tty" yaml:"stderr_tty"`
}

// Gather queries term and the process's standard streams for a Report.
func Gather(term *terminal.Terminal) Report {
	cols, rows := term.Size()
	return Report{
		Backend:     term.Kind().String(),
		Interactive: term.Interactive(),
		Columns:     cols,
		Rows:        rows,
		StdinTTY:    core.IsStdinTerm,
		StdoutTTY:   core.IsStdoutTerm,
		StderrTTY:   core.IsStderrTerm,
	}
}

// Write renders the Report for term to p in the requested output format.
func Write(p *core.Printer, term *terminal.Terminal, output core.Output) error {
	return write(p, Gather(term), output)
}

func write(p *core.Printer, r Report, output core.Output) error {
	switch output {
	case core.OutputJSON:
		buf, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		p.Write(buf)
		p.WriteString("\n")
	case core.OutputYAML:
		buf, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		p.Write(buf)
	default:
		writeText(p, r)
	}
	return nil
}

func writeText(p *core.Printer, r Report) {
	writeField(p, "backend", r.Backend)
	writeField(p, "interactive", strconv.FormatBool(r.Interactive))
	writeField(p, "columns", strconv.FormatUint(uint64(r.Columns), 10))
	writeField(p, "rows", strconv.FormatUint(uint64(r.Rows), 10))
	writeField(p, "stdin tty", strconv.FormatBool(r.StdinTTY))
	writeField(p, "stdout tty", strconv.FormatBool(r.StdoutTTY))
	writeField(p, "stderr tty", strconv.FormatBool(r.StderrTTY))
}

func writeField(p *core.Printer, name, value string) {
	p.Set(core.Bold)
	p.WriteString(name)
	p.Reset()
	p.WriteString(": ")
	p.WriteString(value)
	p.WriteString("\n")
}
