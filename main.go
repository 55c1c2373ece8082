package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jswenson/termctl/internal/cli"
	"github.com/jswenson/termctl/internal/config"
	"github.com/jswenson/termctl/internal/core"
	"github.com/jswenson/termctl/internal/info"
	"github.com/jswenson/termctl/internal/terminal"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Exit cleanly when one of the below signals is caught.
	chSig := make(chan os.Signal, 1)
	signal.Notify(chSig, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		sig := <-chSig
		p := core.NewHandle(core.ColorAuto).Stderr()
		core.WriteErrorMsg(p, core.SignalError(sig.String()))
		os.Exit(1)
	}()

	// Parse the CLI args.
	app, err := cli.Parse(args)
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		writeCLIErr(p, err)
		return 1
	}

	// Parse any config file, and merge with it.
	file, err := config.GetFile(app.ConfigPath)
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		core.WriteErrorMsg(p, err)
		return 1
	}
	app.Cfg.Merge(file)

	handle := core.NewHandle(app.Cfg.Color)

	// Print help to stdout.
	if app.Help {
		p := handle.Stdout()
		app.PrintHelp(p)
		p.Flush()
		return 0
	}

	// Print version to stdout.
	if app.Version {
		fmt.Fprintln(os.Stdout, "termctl", core.Version)
		return 0
	}

	// Print build info to stdout.
	if app.BuildInfo {
		p := handle.Stdout()
		p.Write(core.GetBuildInfo())
		p.WriteString("\n")
		p.Flush()
		return 0
	}

	// Otherwise, an operation must be provided.
	if !app.HasOperation() {
		writeCLIErr(handle.Stderr(), errors.New("at least one operation must be provided"))
		return 1
	}

	term := terminal.NewWithOptions(terminal.Options{
		ForceANSI: getValue(app.Cfg.ForceANSI),
	})
	defer term.Close()

	// Mutating operations run in a fixed order; the queries run last.
	if app.Clear != nil {
		term.Clear(*app.Clear)
	}
	if app.ScrollUp != nil {
		term.ScrollUp(*app.ScrollUp)
	}
	if app.ScrollDown != nil {
		term.ScrollDown(*app.ScrollDown)
	}
	if app.Resize != nil {
		term.SetSize(app.Resize.Width, app.Resize.Height)
	}

	if app.Size {
		w, h := term.Size()
		fmt.Fprintln(os.Stdout, w, h)
	}
	if app.Info {
		p := handle.Stdout()
		if err := info.Write(p, term, app.Cfg.Output); err != nil {
			core.WriteErrorMsg(handle.Stderr(), err)
			return 1
		}
		p.Flush()
	}

	return 0
}

func getValue[T any](v *T) T {
	if v == nil {
		var t T
		return t
	}
	return *v
}

// writeCLIErr writes the provided CLI error to the Printer.
func writeCLIErr(p *core.Printer, err error) {
	core.WriteErrorMsgNoFlush(p, err)

	p.WriteString("\nFor more information, try '")

	p.Set(core.Bold)
	p.WriteString("--help")
	p.Reset()

	p.WriteString("'.\n")
	p.Flush()
}
