// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"ringron/internal/engine"
)

// WriteText prints a comment banner, an optional TSV header and one line per
// row.
func WriteText(w io.Writer, x *engine.Extent, header bool) error {
	cover := ""
	if x.Cover() {
		cover = ", covered"
	}
	if _, err := fmt.Fprintf(w, "# %s: %s (%d bells%s, %d rows)\n# definition: %s\n",
		x.Method(), x.Name(), x.NumberOfBells(), cover, x.Len(), x.Definition()); err != nil {
		return err
	}
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	var err error
	x.Each(func(i int, r engine.Row) bool {
		_, err = fmt.Fprintln(w, FormatRowTSV(i, r))
		return err == nil
	})
	return err
}
