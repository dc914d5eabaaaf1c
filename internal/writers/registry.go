// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"ringron/internal/engine"
)

// Options tune presentation; formats ignore what they do not use.
type Options struct {
	Header  bool // TSV header line (text)
	BufSize int  // channel depth for streaming formats
}

// ExtentWriter renders a whole extent to w.
type ExtentWriter func(w io.Writer, x *engine.Extent, opt Options) error

// Writer registry (format → handler). Formats register in init() blocks.
var extentWriters = map[string]ExtentWriter{}

// RegisterExtent adds or replaces (last wins) the writer for format.
func RegisterExtent(format string, fn ExtentWriter) { extentWriters[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(extentWriters))
	for f := range extentWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteExtent dispatches to the writer registered for format. Broken pipes
// are not errors: the reader simply stopped listening.
func WriteExtent(format string, w io.Writer, x *engine.Extent, opt Options) error {
	fn, ok := extentWriters[format]
	if !ok {
		return fmt.Errorf("unknown extent format %q (no writer registered)", format)
	}
	return IgnoreBrokenPipe(fn(w, x, opt))
}
