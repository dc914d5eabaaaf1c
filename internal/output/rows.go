// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"ringron/internal/engine"
	"ringron/pkg/api"
)

// CallsCSV joins calls for the text format.
func CallsCSV(calls []engine.Call) string {
	if len(calls) == 0 {
		return ""
	}
	ss := make([]string, len(calls))
	for i, c := range calls {
		ss[i] = string(c)
	}
	return strings.Join(ss, ",")
}

// FormatRowTSV returns the TSV columns of row i (no trailing newline).
func FormatRowTSV(i int, r engine.Row) string {
	return fmt.Sprintf("%d\t%s\t%s\t%s", i, engine.StrokeAt(i), r, CallsCSV(r.Calls()))
}

// ToAPIRow converts row i to the stable wire schema (v1).
func ToAPIRow(i int, r engine.Row) api.RowV1 {
	v := api.RowV1{
		Index:  i,
		Stroke: engine.StrokeAt(i).String(),
		Bells:  append([]int(nil), r.Places...),
	}
	for _, c := range r.Calls() {
		v.Calls = append(v.Calls, string(c))
	}
	return v
}

// ToAPIExtent converts a finished extent to the stable wire schema (v1).
func ToAPIExtent(x *engine.Extent) api.ExtentV1 {
	v := api.ExtentV1{
		Method:     x.Method(),
		Name:       x.Name(),
		Bells:      x.NumberOfBells(),
		Cover:      x.Cover(),
		Definition: x.Definition(),
		Size:       x.Size(),
		Rows:       make([]api.RowV1, 0, x.Len()),
	}
	x.Each(func(i int, r engine.Row) bool {
		v.Rows = append(v.Rows, ToAPIRow(i, r))
		return true
	})
	return v
}
