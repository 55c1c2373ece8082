package core

import (
	"encoding/json"
	"os"
	"runtime/debug"
)

var (
	IsStdinTerm  bool
	IsStderrTerm bool
	IsStdoutTerm bool

	Version string

	buildInfo *debug.BuildInfo
)

func init() {
	// Determine if stdin, stderr and stdout are TTYs.
	IsStdinTerm = isTerminal(int(os.Stdin.Fd()))
	IsStderrTerm = isTerminal(int(os.Stderr.Fd()))
	IsStdoutTerm = isTerminal(int(os.Stdout.Fd()))

	Version = getVersion()
}

// getVersion attempts to read the executable's BuildInfo, returning the version.
func getVersion() string {
	var ok bool
	buildInfo, ok = debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "v(dev)"
	}
	return buildInfo.Main.Version
}

// GetBuildInfo returns the JSON encoded build information for the executable.
func GetBuildInfo() []byte {
	type BuildInfo struct {
		Termctl  string            `json:"termctl"`
		Go       string            `json:"go,omitzero"`
		Settings map[string]string `json:"settings,omitzero"`
		Deps     map[string]string `json:"deps,omitzero"`
	}

	bi := BuildInfo{Termctl: Version}
	if buildInfo != nil {
		bi.Go = buildInfo.GoVersion

		if len(buildInfo.Deps) > 0 {
			bi.Deps = make(map[string]string, len(buildInfo.Deps))
			for _, dep := range buildInfo.Deps {
				bi.Deps[dep.Path] = dep.Version
			}
		}

		if len(buildInfo.Settings) > 0 {
			bi.Settings = make(map[string]string, len(buildInfo.Settings))
			for _, setting := range buildInfo.Settings {
				bi.Settings[setting.Key] = setting.Value
			}
		}
	}

	out, _ := json.Marshal(bi)
	return out
}
