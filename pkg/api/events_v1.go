// pkg/api/events_v1.go
package api

// EventV1 is the stable JSONL schema for the ringing stream. Type is
// "call" or "strike"; Place is 1-based.
type EventV1 struct {
	Type   string `json:"type"`
	Row    int    `json:"row"`
	Stroke string `json:"stroke"`
	Bell   int    `json:"bell,omitempty"`
	Place  int    `json:"place,omitempty"`
	Call   string `json:"call,omitempty"`
}
