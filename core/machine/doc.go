// Package machine contains the Enigma cipher core. It never imports cli,
// writers, or app; keep it domain-only.
//
// A Machine owns exactly one piece of mutable state: the rotor position
// triple. Encode, Reset, and SetPosition mutate it and need exclusive
// access; Position is a pure read. The registry tables behind every
// Machine are immutable and shared.
package machine
