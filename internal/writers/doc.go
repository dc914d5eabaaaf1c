// Package writers turns finished extents and ringing events into serialized
// outputs.
//
// Design:
//   - Writers own all presentation knowledge (text banner, JSON, JSONL).
//   - Engine stays domain-only; ringing stays iteration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
