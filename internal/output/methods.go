// internal/output/methods.go
package output

import (
	"fmt"
	"io"

	"ringron/internal/jsonutil"
	"ringron/internal/method"
	"ringron/pkg/api"
)

// ToAPIMethod converts a loaded method to the listing schema (v1).
func ToAPIMethod(m *method.Method) api.MethodV1 {
	v := api.MethodV1{
		Name:      m.Name(),
		Bells:     m.NumberOfBells(),
		Coverable: m.Coverable(),
		Source:    m.Source(),
		Extents:   []api.ExtentInfoV1{},
	}
	for _, id := range m.ExtentIDs() {
		e, _ := m.Extent(id)
		v.Extents = append(v.Extents, api.ExtentInfoV1{
			ID:         id,
			Name:       e.Name,
			Length:     e.Length,
			Definition: e.Definition,
			Mutable:    e.Mutable,
		})
	}
	return v
}

// WriteMethodsText lists each method followed by its extents, one per
// indented TSV line.
func WriteMethodsText(w io.Writer, ms []*method.Method) error {
	for _, m := range ms {
		cover := ""
		if m.Coverable() {
			cover = ", coverable"
		}
		if _, err := fmt.Fprintf(w, "%s (%d bells%s)\t%s\n", m.Name(), m.NumberOfBells(), cover, m.Source()); err != nil {
			return err
		}
		for _, id := range m.ExtentIDs() {
			e, _ := m.Extent(id)
			mut := ""
			if e.Mutable {
				mut = "\tmutable"
			}
			if _, err := fmt.Fprintf(w, "  %d\t%s\t%d\t%s%s\n", id, e.Name, e.Length, e.Definition, mut); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteMethodsJSON writes the listing as one indented JSON array.
func WriteMethodsJSON(w io.Writer, ms []*method.Method) error {
	out := make([]api.MethodV1, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAPIMethod(m))
	}
	return jsonutil.EncodePretty(w, out)
}
