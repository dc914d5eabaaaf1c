package writers

import (
	"bufio"
	"io"

	"ringron/internal/engine"
	"ringron/internal/output"
)

func init() {
	RegisterExtent(output.FormatText, func(w io.Writer, x *engine.Extent, opt Options) error {
		bw := bufio.NewWriter(w)
		if err := output.WriteText(bw, x, opt.Header); err != nil {
			return err
		}
		return bw.Flush()
	})
	RegisterExtent(output.FormatJSON, func(w io.Writer, x *engine.Extent, _ Options) error {
		return output.WriteJSON(w, x)
	})
	RegisterExtent(output.FormatJSONL, writeExtentJSONL)
}

// writeExtentJSONL streams one v1 row per line.
func writeExtentJSONL(w io.Writer, x *engine.Extent, opt Options) error {
	in, done := StartRowJSONLWriter(w, opt.BufSize)
	x.Each(func(i int, r engine.Row) bool {
		in <- IndexedRow{Index: i, Row: r}
		return true
	})
	close(in)
	return <-done
}
