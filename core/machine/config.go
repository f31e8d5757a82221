// core/machine/config.go
package machine

import (
	"fmt"

	"enigma-core/plugboard"
	"enigma-core/rotor"
)

// Slot names for error messages, left to right.
var slotNames = [3]string{"left", "middle", "right"}

// Configuration error taxonomy. Lookup failures wrap
// rotor.ErrUnknownComponent; plugboard failures wrap the plugboard errors.
// All are detected at construction and abort it: New never returns a
// partially configured machine.
var (
	ErrUnknownComponent         = rotor.ErrUnknownComponent
	ErrInvalidRingSetting       = fmt.Errorf("ring setting out of range")
	ErrInvalidInitialPosition   = fmt.Errorf("invalid initial position")
	ErrInvalidPlugboardPair     = plugboard.ErrInvalidPair
	ErrDuplicatePlugboardLetter = plugboard.ErrDuplicateLetter
	ErrTooManyPlugboardPairs    = plugboard.ErrTooManyPairs
)

// Config is one complete machine setting. Rotors and Rings are ordered
// left, middle, right as an operator reads the wheels. The same rotor name
// may occupy several slots; the hardware model does not forbid it.
//
// PreserveNonAlpha selects what happens to characters outside A-Z during
// Encode: true passes them through to the output unchanged, false drops
// them. Both behaviors are historical; this is a policy switch, not an
// error path.
type Config struct {
	Reflector        string
	Rotors           [3]string
	Rings            [3]int // 1..26
	Position         string // three letters A-Z
	Plugboard        []string
	PreserveNonAlpha bool
}

// Default returns the stock Wehrmacht setting: reflector B, rotors I II III,
// rings 1, ground position AAA, no cables, spaces preserved.
func Default() Config {
	return Config{
		Reflector:        "B",
		Rotors:           [3]string{"I", "II", "III"},
		Rings:            [3]int{1, 1, 1},
		Position:         "AAA",
		PreserveNonAlpha: true,
	}
}

func validPosition(p string) bool {
	if len(p) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if p[i] < 'A' || p[i] > 'Z' {
			return false
		}
	}
	return true
}

// resolve validates cfg against the registry and builds the immutable
// per-slot wiring tuples.
func (c Config) resolve() (refl rotor.Reflector, slots [3]slot, board plugboard.Board, seed [3]int, err error) {
	refl, err = rotor.LookupReflector(c.Reflector)
	if err != nil {
		return
	}
	for i, name := range c.Rotors {
		var spec rotor.Spec
		spec, err = rotor.Lookup(name)
		if err != nil {
			err = fmt.Errorf("%s slot: %w", slotNames[i], err)
			return
		}
		ring := c.Rings[i]
		if ring < 1 || ring > 26 {
			err = fmt.Errorf("%s slot ring %d: %w (want 1..26)", slotNames[i], ring, ErrInvalidRingSetting)
			return
		}
		slots[i] = slot{spec: spec, ring: ring - 1}
	}
	if !validPosition(c.Position) {
		err = fmt.Errorf("position %q: %w (want three letters A-Z)", c.Position, ErrInvalidInitialPosition)
		return
	}
	for i := 0; i < 3; i++ {
		seed[i] = int(c.Position[i] - 'A')
	}
	board, err = plugboard.New(c.Plugboard)
	return
}
