// pkg/api/extent_v1.go
package api

// RowV1 is the stable JSON/JSONL schema for one row of an extent.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RowV1 struct {
	Index  int      `json:"index"`
	Stroke string   `json:"stroke"` // "hand" | "back"
	Bells  []int    `json:"bells"`  // bell at each place, lead first
	Calls  []string `json:"calls,omitempty"`
}

// ExtentV1 is the stable schema for a whole extent.
type ExtentV1 struct {
	Method     string  `json:"method"`
	Name       string  `json:"name"`
	Bells      int     `json:"bells"`
	Cover      bool    `json:"cover,omitempty"`
	Definition string  `json:"definition"`
	Size       int     `json:"size"` // strikes
	Rows       []RowV1 `json:"rows"`
}
