// core/machine/machine.go
package machine

import (
	"fmt"
	"strings"

	"enigma-core/plugboard"
	"enigma-core/rotor"
)

// slot is one mounted rotor: its wiring plus the ring offset, fixed for the
// machine's lifetime.
type slot struct {
	spec rotor.Spec
	ring int // 0-based Ringstellung offset
}

// forward passes a letter index right-to-left through the rotor at pos.
func (s slot) forward(c, pos int) int {
	shift := pos - s.ring
	c = mod26(c + shift)
	c = s.spec.Forward[c]
	return mod26(c - shift)
}

// inverse passes a letter index left-to-right through the rotor at pos.
func (s slot) inverse(c, pos int) int {
	shift := pos - s.ring
	c = mod26(c + shift)
	c = s.spec.Inverse[c]
	return mod26(c - shift)
}

func mod26(x int) int { return ((x % 26) + 26) % 26 }

// Machine is a configured Enigma. The position triple is the only mutable
// field; everything else is fixed at New. Not safe for concurrent mutation.
type Machine struct {
	cfg   Config
	refl  rotor.Reflector
	slots [3]slot // left, middle, right
	board plugboard.Board
	seed  [3]int
	pos   [3]int
}

// New validates cfg and returns a machine seeded at cfg.Position.
// Any violation aborts construction; nothing is clamped or truncated.
func New(cfg Config) (*Machine, error) {
	cfg.Position = strings.ToUpper(cfg.Position)
	refl, slots, board, seed, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	cfg.Plugboard = board.Pairs()
	return &Machine{cfg: cfg, refl: refl, slots: slots, board: board, seed: seed, pos: seed}, nil
}

// Config returns the effective configuration, with the plugboard normalized.
func (m *Machine) Config() Config { return m.cfg }

// Position returns the rotor windows as three letters, left to right.
func (m *Machine) Position() string {
	return string([]byte{byte('A' + m.pos[0]), byte('A' + m.pos[1]), byte('A' + m.pos[2])})
}

// Reset returns the rotors to the seeded ground position. Idempotent, no
// other side effects.
func (m *Machine) Reset() { m.pos = m.seed }

// SetPosition dials a new ground setting. It also re-seeds the position
// Reset returns to, matching how an operator sets up a fresh message key.
func (m *Machine) SetPosition(p string) error {
	p = strings.ToUpper(p)
	if !validPosition(p) {
		return fmt.Errorf("position %q: %w (want three letters A-Z)", p, ErrInvalidInitialPosition)
	}
	for i := 0; i < 3; i++ {
		m.seed[i] = int(p[i] - 'A')
	}
	m.pos = m.seed
	m.cfg.Position = p
	return nil
}

// step advances the rotors once, before a letter is enciphered. The right
// rotor always moves. A notch on the right rotor carries the middle one;
// a middle rotor sitting on its own notch carries itself and the left
// rotor, which is the double-step anomaly: it fires on the letter after
// the right-hand notch pushed the middle rotor onto its notch, so the
// middle rotor moves on two consecutive letters.
//
// All checks read the pre-advance positions and the triple is replaced
// in one assignment, never half-updated.
func (m *Machine) step() {
	next := m.pos
	switch {
	case m.slots[1].spec.AtNotch(m.pos[1]):
		next[0] = mod26(m.pos[0] + 1)
		next[1] = mod26(m.pos[1] + 1)
	case m.slots[2].spec.AtNotch(m.pos[2]):
		next[1] = mod26(m.pos[1] + 1)
	}
	next[2] = mod26(m.pos[2] + 1)
	m.pos = next
}

// encipher runs one letter index through the full signal path at the
// current positions. The path is symmetric around the reflector, which is
// why the whole transform is an involution for a fixed rotor state.
func (m *Machine) encipher(c int) int {
	c = m.board.Swap(c)
	for i := 2; i >= 0; i-- {
		c = m.slots[i].forward(c, m.pos[i])
	}
	c = m.refl.Wiring[c]
	for i := 0; i <= 2; i++ {
		c = m.slots[i].inverse(c, m.pos[i])
	}
	return m.board.Swap(c)
}

// Encode transforms text. Letters are taken case-insensitively and always
// step the rotors before being enciphered; other characters follow the
// PreserveNonAlpha policy. Because the plugboard and reflector are
// involutions, Encode is its own inverse given the same starting position:
// decrypting is encoding the ciphertext after a Reset.
func (m *Machine) Encode(text string) string {
	out, _ := m.encode(text, false)
	return out
}

// EncodeTrace is Encode plus the position string after each enciphered
// letter, in input order. Pass-through characters do not appear in the
// trace because they do not step the rotors.
func (m *Machine) EncodeTrace(text string) (string, []string) {
	return m.encode(text, true)
}

func (m *Machine) encode(text string, trace bool) (string, []string) {
	var b strings.Builder
	b.Grow(len(text))
	var positions []string
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' {
			m.step()
			c := m.encipher(int(r - 'A'))
			b.WriteByte(byte('A' + c))
			if trace {
				positions = append(positions, m.Position())
			}
			continue
		}
		if m.cfg.PreserveNonAlpha {
			b.WriteRune(r)
		}
	}
	return b.String(), positions
}

// Describe renders the settings the way the operator sheet lists them.
func (m *Machine) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reflector: %s\n", m.cfg.Reflector)
	fmt.Fprintf(&b, "Rotors:    %s %s %s (left to right)\n", m.cfg.Rotors[0], m.cfg.Rotors[1], m.cfg.Rotors[2])
	fmt.Fprintf(&b, "Rings:     %02d %02d %02d\n", m.cfg.Rings[0], m.cfg.Rings[1], m.cfg.Rings[2])
	fmt.Fprintf(&b, "Position:  %s\n", m.Position())
	if pairs := m.board.Pairs(); len(pairs) > 0 {
		fmt.Fprintf(&b, "Plugboard: %s\n", strings.Join(pairs, " "))
	} else {
		b.WriteString("Plugboard: (none)\n")
	}
	return b.String()
}
