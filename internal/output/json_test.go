// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"ringron/internal/engine"
	"ringron/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	x := buildExtent(t, "../method/testdata/plain_bob_minimus.mcf", 1, engine.DefaultOptions())

	buf := &bytes.Buffer{}
	if err := WriteJSON(buf, x); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got api.ExtentV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if got.Method != "Plain Bob Minimus" || got.Bells != 4 || got.Size != 112 || len(got.Rows) != 28 {
		t.Fatalf("unexpected extent header: %+v", got)
	}
	if r := got.Rows[1]; r.Stroke != "back" || len(r.Calls) != 1 || r.Calls[0] != "Go" {
		t.Fatalf("row 1 = %+v, want backstroke Go", r)
	}
	if r := got.Rows[2]; r.Calls != nil || r.Bells[0] != 2 {
		t.Fatalf("row 2 = %+v", r)
	}
}

func TestToAPIRowCopiesBells(t *testing.T) {
	r := engine.Row{Places: []int{2, 1}, Bob: true, ThatsAll: true}
	v := ToAPIRow(3, r)
	r.Places[0] = 9
	if v.Bells[0] != 2 || v.Stroke != "back" || len(v.Calls) != 2 || v.Calls[1] != "That's all" {
		t.Fatalf("unexpected row: %+v", v)
	}
}
