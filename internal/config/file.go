package config

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// GetFile returns the Config parsed from a config file, or nil if one cannot
// be found.
func GetFile(path string) (*Config, error) {
	path, buf, err := getConfigFile(path)
	if err != nil || path == "" {
		return nil, err
	}
	return parseFile(path, string(buf))
}

// getConfigFile searches for a config file, returning its contents if one
// exists.
func getConfigFile(path string) (string, []byte, error) {
	if path != "" {
		// Expand '~' to the home directory.
		if len(path) >= 2 && path[0] == '~' && path[1] == os.PathSeparator {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", nil, err
			}
			path = home + path[1:]
		}
		// Direct config path was provided.
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", nil, err
		}
		return readFile(abs)
	}

	if runtime.GOOS == "windows" {
		appData := os.Getenv("AppData")
		if appData == "" {
			return "", nil, nil
		}
		path, buf, err := readFile(filepath.Join(appData, "termctl", "config"))
		if err != nil {
			return "", nil, nil
		}
		return path, buf, nil
	}

	xdgHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgHome != "" {
		path, buf, err := readFile(xdgHome + "/termctl/config")
		if err == nil {
			return path, buf, nil
		}
	}

	home := os.Getenv("HOME")
	if home != "" {
		path, buf, err := readFile(home + "/.config/termctl/config")
		if err == nil {
			return path, buf, nil
		}
	}

	return "", nil, nil
}

func readFile(path string) (string, []byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, buf, nil
}

// parseFile parses the provided file contents, returning any error
// encountered along with its line number.
func parseFile(path, s string) (*Config, error) {
	var cfg Config
	for num, line := range lines(s) {
		line = strings.TrimSpace(line)

		if line == "" || line[0] == '#' {
			// Skip empty lines and comments.
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, newFileError(path, num, fmt.Errorf("invalid key/value pair '%s'", line))
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)

		if err := cfg.Set(key, val); err != nil {
			return nil, newFileError(path, num, err)
		}
	}
	return &cfg, nil
}

// lines returns an iterator over lines and 1-based line numbers.
func lines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		var num int
		for len(s) > 0 {
			num++
			line, rest, _ := strings.Cut(s, "\n")
			s = rest
			if !yield(num, line) {
				return
			}
		}
	}
}

type fileError struct {
	path string
	line int
	err  error
}

func newFileError(path string, line int, err error) *fileError {
	return &fileError{path: path, line: line, err: err}
}

func (e *fileError) Error() string {
	return fmt.Sprintf("config %s:%d: %s", e.path, e.line, e.err)
}

func (e *fileError) Unwrap() error {
	return e.err
}
