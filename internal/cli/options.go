// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ringron/internal/config"
	"ringron/internal/engine"
	"ringron/internal/writers"
)

// UsageError marks a bad command line; the app exits with status 2.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// GlobalOptions are the persistent flags of every command.
type GlobalOptions struct {
	ConfigPath string
	DataDir    string
	Verbose    bool
}

// ExtentOptions holds the flags and arguments of extent and ring.
type ExtentOptions struct {
	Method   string
	ExtentID int

	Cover   bool
	Intros  int
	Courses int
	Seed    uint64
	Seeded  bool // --seed given

	// Output
	Output   string
	NoHeader bool

	// ring only
	Assigned []int
}

// ParseExtentArgs reads the "<method> <id>" positional arguments.
func ParseExtentArgs(args []string) (string, int, error) {
	if len(args) != 2 {
		return "", 0, usagef("want <method> <extent-id>, got %d argument(s)", len(args))
	}
	name := strings.TrimSpace(args[0])
	if name == "" {
		return "", 0, usagef("method name is empty")
	}
	id, err := strconv.Atoi(args[1])
	if err != nil || id < 1 {
		return "", 0, usagef("extent id %q is not a positive integer", args[1])
	}
	return name, id, nil
}

// ParseAssigned reads a comma separated bell list such as "1,3".
func ParseAssigned(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		b, err := strconv.Atoi(f)
		if err != nil || b < 1 {
			return nil, usagef("--assigned: %q is not a bell number", f)
		}
		out = append(out, b)
	}
	return out, nil
}

// Merge fills every option whose flag was not set from cfg.
func (o *ExtentOptions) Merge(cfg config.ExtentConfig, changed func(flag string) bool) {
	if !changed("cover") {
		o.Cover = cfg.Cover
	}
	if !changed("intros") {
		o.Intros = cfg.Intros
	}
	if !changed("courses") {
		o.Courses = cfg.Courses
	}
	o.Seeded = changed("seed")
}

// Validate checks ranges before any file is read.
func (o *ExtentOptions) Validate() error {
	if o.Intros < 0 {
		return usagef("--intros must be ≥ 0")
	}
	if o.Courses < 1 {
		return usagef("--courses must be ≥ 1")
	}
	if o.Output != "" && !validFormat(o.Output) {
		return usagef("invalid --output %q (want %s)", o.Output, strings.Join(writers.Formats(), " | "))
	}
	return nil
}

// EngineOptions converts to build options.
func (o *ExtentOptions) EngineOptions() engine.Options {
	return engine.Options{Cover: o.Cover, Intros: o.Intros, Courses: o.Courses}
}

// Shuffler is seeded when --seed was given and random otherwise.
func (o *ExtentOptions) Shuffler() *engine.Shuffler {
	if o.Seeded {
		return engine.NewSeededShuffler(o.Seed)
	}
	return nil
}

func validFormat(f string) bool {
	for _, g := range writers.Formats() {
		if f == g {
			return true
		}
	}
	return false
}

// IsUsage reports whether err came from a bad command line.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
