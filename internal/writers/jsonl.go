// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"ringron/internal/engine"
	"ringron/internal/jsonlutil"
	"ringron/internal/output"
	"ringron/pkg/api"
)

// IndexedRow carries a row with its position in the extent, which decides
// its stroke.
type IndexedRow struct {
	Index int
	Row   engine.Row
}

// StartRowJSONLWriter streams each row as one JSON line (v1).
func StartRowJSONLWriter(out io.Writer, bufSize int) (chan<- IndexedRow, <-chan error) {
	return jsonlutil.Start[IndexedRow](out, bufSize,
		func(enc *json.Encoder, r IndexedRow) error {
			return enc.Encode(output.ToAPIRow(r.Index, r.Row))
		},
		IsBrokenPipe,
	)
}

// StartEventJSONLWriter streams ringing events as JSON lines (v1).
func StartEventJSONLWriter(out io.Writer, bufSize int) (chan<- api.EventV1, <-chan error) {
	return jsonlutil.Start[api.EventV1](out, bufSize,
		func(enc *json.Encoder, ev api.EventV1) error {
			return enc.Encode(ev)
		},
		IsBrokenPipe,
	)
}
