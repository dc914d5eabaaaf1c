// Package engine expands a method definition into a finished extent: intro
// rounds, courses of leads, the parity pad and the closing rounds. It never
// imports app, writers, cli, or ringing; keep it domain-only.
//
// An Extent is only handed out once every row has been checked to be a full
// permutation of its bells. External outputs must not depend on the internal
// shape here; use pkg/api for stable wire types (JSON/JSONL v1).
package engine
