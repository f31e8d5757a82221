// Package writers turns cipher results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (plain text, JSON).
//   - The machine core stays domain-only; cli stays flag-parsing-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
