// internal/output/json.go
package output

import (
	"io"

	"ringron/internal/engine"
	"ringron/internal/jsonutil"
)

// WriteJSON writes the extent as a single v1 JSON object (pretty-indented).
func WriteJSON(w io.Writer, x *engine.Extent) error {
	return jsonutil.EncodePretty(w, ToAPIExtent(x))
}
