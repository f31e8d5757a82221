// Package rotor is the read-only registry of Enigma M3 wheel specifications:
// eight rotors (I-VIII) and five reflectors (A, B, C, B-Thin, C-Thin).
// The tables are process-wide constants; lookups never mutate them, so
// specs may be shared freely across machine instances.
package rotor

import (
	"fmt"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrUnknownComponent reports a rotor or reflector name outside the fixed
// historical set.
var ErrUnknownComponent = fmt.Errorf("unknown component")

// Spec is one rotor: forward and inverse wiring as contact index maps,
// plus the window letters that trip the next wheel.
type Spec struct {
	Name    string
	Forward [26]int
	Inverse [26]int
	Notches string
}

// AtNotch reports whether the rotor shows a notch letter at position pos.
func (s Spec) AtNotch(pos int) bool {
	return strings.IndexByte(s.Notches, alphabet[pos]) >= 0
}

// Reflector is one reflector wheel: an involutive wiring with no position
// or ring offset.
type Reflector struct {
	Name   string
	Wiring [26]int
}

var (
	rotors     = map[string]Spec{}
	reflectors = map[string]Reflector{}
)

func init() {
	for _, r := range rotorTable {
		s := Spec{Name: r.name, Notches: r.notches}
		for i := 0; i < 26; i++ {
			out := int(r.wiring[i] - 'A')
			s.Forward[i] = out
			s.Inverse[out] = i
		}
		rotors[r.name] = s
	}
	for _, r := range reflectorTable {
		ref := Reflector{Name: r.name}
		for i := 0; i < 26; i++ {
			ref.Wiring[i] = int(r.wiring[i] - 'A')
		}
		reflectors[r.name] = ref
	}
}

// Lookup returns the spec for a rotor name (I-VIII).
func Lookup(name string) (Spec, error) {
	s, ok := rotors[name]
	if !ok {
		return Spec{}, fmt.Errorf("rotor %q: %w", name, ErrUnknownComponent)
	}
	return s, nil
}

// LookupReflector returns the spec for a reflector name.
func LookupReflector(name string) (Reflector, error) {
	r, ok := reflectors[name]
	if !ok {
		return Reflector{}, fmt.Errorf("reflector %q: %w", name, ErrUnknownComponent)
	}
	return r, nil
}

// Names lists the rotor names in historical order.
func Names() []string {
	out := make([]string, len(rotorTable))
	for i, r := range rotorTable {
		out[i] = r.name
	}
	return out
}

// ReflectorNames lists the reflector names in table order.
func ReflectorNames() []string {
	out := make([]string, len(reflectorTable))
	for i, r := range reflectorTable {
		out[i] = r.name
	}
	return out
}
